package services

import (
	"context"
	"fmt"

	"github.com/dddlab/backend/domain/checkout"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/domain/product"
	"github.com/google/uuid"
)

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type OrderService struct {
	orders    checkout.Store
	customers customer.Store
	products  product.Store
}

func NewOrderService(orders checkout.Store, customers customer.Store, products product.Store) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

// Place creates an order for an existing customer. Item names and prices
// are copied from the current products.
func (s *OrderService) Place(ctx context.Context, customerID string, inputs []OrderItemInput) (*checkout.Order, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	o, err := checkout.NewOrder(uuid.NewString(), customerID, items)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return o, nil
}

func (s *OrderService) ReplaceItems(ctx context.Context, id string, inputs []OrderItemInput) (*checkout.Order, error) {
	o, err := s.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	if err := o.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return o, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*checkout.Order, error) {
	return s.orders.Find(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]checkout.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]checkout.OrderItem, error) {
	items := make([]checkout.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		p, err := s.products.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name, p.Price, p.ID, input.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
