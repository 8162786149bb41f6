package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dddlab/backend/domain/checkout"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order and its items.
func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	// the items association is inserted in its own statement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&orderSchema).Error
	})
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	o.CreatedAt = orderSchema.CreatedAt
	o.UpdatedAt = orderSchema.UpdatedAt

	return nil
}

// Update rewrites the order row and replaces all of its items.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID,
				"total":       o.Total(),
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", o.ID).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		items := newOrderItemSchemas(o)
		if len(items) == 0 {
			return nil
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) Find(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	if err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("id = ?", id).
		First(&orderSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder(), nil
}

func (s *OrderStore) FindAll(ctx context.Context) ([]checkout.Order, error) {
	var orderSchemas []OrderSchema

	if err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Order("created_at, id").
		Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for _, orderSchema := range orderSchemas {
		orders = append(orders, *orderSchema.ToDomainOrder())
	}

	return orders, nil
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
