package services

import (
	"context"
	"fmt"

	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/product"
	"github.com/dddlab/backend/pkg/pagination"
	"github.com/google/uuid"
)

type ProductService struct {
	store      product.Store
	dispatcher domain.EventDispatcher
}

func NewProductService(store product.Store, dispatcher domain.EventDispatcher) *ProductService {
	return &ProductService{
		store:      store,
		dispatcher: dispatcher,
	}
}

func (s *ProductService) Create(ctx context.Context, name string, price float64) (*product.Product, error) {
	p, err := product.New(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return p, notify(s.dispatcher, product.NewProductCreatedEvent(p))
}

func (s *ProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	return s.store.List(ctx, pager)
}
