package product

import (
	"context"
	"errors"
	"time"

	"github.com/dddlab/backend/pkg/pagination"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrInvalidPrice = errors.New("price must be greater or equal than zero")
)

type Store interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Product, error)
}

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
} // @name product.Product

func New(id, name string, price float64) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	switch {
	case p.ID == "":
		return ErrIDRequired
	case p.Name == "":
		return ErrNameRequired
	case p.Price < 0:
		return ErrInvalidPrice
	}

	return nil
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	p.Name = name

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}

	p.Price = price

	return nil
}
