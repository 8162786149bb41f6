package customer

import (
	"context"
	"errors"
	"time"

	"github.com/dddlab/backend/pkg/pagination"
)

var (
	ErrNotFound            = errors.New("customer not found")
	ErrAlreadyExists       = errors.New("customer already exists")
	ErrIDRequired          = errors.New("id is required")
	ErrNameRequired        = errors.New("name is required")
	ErrAddressRequired     = errors.New("address is mandatory to activate a customer")
	ErrInvalidRewardPoints = errors.New("reward points must be positive")
)

type Store interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      *Address  `json:"address,omitempty"`
	Active       bool      `json:"active"`
	RewardPoints int       `json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
} // @name customer.Customer

func New(id, name string) (*Customer, error) {
	c := &Customer{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c.ID == "" {
		return ErrIDRequired
	}

	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	c.Name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.Address = &address

	return nil
}

func (c *Customer) Activate() error {
	if c.Address == nil {
		return ErrAddressRequired
	}

	c.Active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.Active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrInvalidRewardPoints
	}

	c.RewardPoints += points

	return nil
}
