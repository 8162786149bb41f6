package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dddlab/backend/domain/product"
	"github.com/dddlab/backend/pkg/pagination"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	productSchema := ProductSchema{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}

	if err := s.db.WithContext(ctx).Create(&productSchema).Error; err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	p.CreatedAt = productSchema.CreatedAt
	p.UpdatedAt = productSchema.UpdatedAt

	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var productSchema ProductSchema

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&productSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return productSchema.ToDomainProduct(), nil
}

func (s *ProductStore) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	var (
		productSchemas []ProductSchema
		total          int64
	)

	if err := s.db.WithContext(ctx).Model(&ProductSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.db.WithContext(ctx).
		Order("created_at, id").
		Offset(offset).Limit(limit).
		Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for _, productSchema := range productSchemas {
		products = append(products, *productSchema.ToDomainProduct())
	}

	return products, nil
}
