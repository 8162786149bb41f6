package checkout

import (
	"context"
	"errors"
	"time"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrIDRequired          = errors.New("id is required")
	ErrCustomerIDRequired  = errors.New("customer id is required")
	ErrItemsRequired       = errors.New("items are required")
	ErrInvalidItemQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidItemPrice    = errors.New("price must be greater or equal than zero")
	ErrItemProductRequired = errors.New("product id is required")
)

type Store interface {
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Find(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
} // @name checkout.Order

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{ID: id, CustomerID: customerID, Items: items}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrIDRequired
	}

	if o.CustomerID == "" {
		return ErrCustomerIDRequired
	}

	if len(o.Items) == 0 {
		return ErrItemsRequired
	}

	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ReplaceItems swaps the whole item list, keeping the previous one when the
// new list is invalid.
func (o *Order) ReplaceItems(items []OrderItem) error {
	previous := o.Items
	o.Items = items

	if err := o.Validate(); err != nil {
		o.Items = previous
		return err
	}

	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Total()
	}

	return total
}
