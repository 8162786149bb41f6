package services

import (
	"context"
	"fmt"

	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/pkg/pagination"
	"github.com/google/uuid"
)

type CustomerService struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewCustomerService(store customer.Store, dispatcher domain.EventDispatcher) *CustomerService {
	return &CustomerService{
		store:      store,
		dispatcher: dispatcher,
	}
}

// Create saves a new customer and then notifies CustomerCreatedEvent.
func (s *CustomerService) Create(ctx context.Context, name string, address *customer.Address) (*customer.Customer, error) {
	c, err := customer.New(uuid.NewString(), name)
	if err != nil {
		return nil, err
	}

	if address != nil {
		if err := c.ChangeAddress(*address); err != nil {
			return nil, err
		}
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return c, notify(s.dispatcher, customer.NewCustomerCreatedEvent(c))
}

// ChangeAddress updates the customer address and then notifies
// CustomerChangeAddressEvent.
func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return c, notify(s.dispatcher, customer.NewCustomerChangeAddressEvent(c))
}

func (s *CustomerService) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, pager *pagination.Pager) ([]customer.Customer, error) {
	return s.store.List(ctx, pager)
}
