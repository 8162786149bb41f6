package postgrestore

import (
	"time"

	"github.com/dddlab/backend/domain/checkout"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/domain/product"
)

type CustomerSchema struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Street       string    `gorm:"column:street"`
	Number       int       `gorm:"column:number"`
	Zip          string    `gorm:"column:zip"`
	City         string    `gorm:"column:city"`
	Active       bool      `gorm:"column:active"`
	RewardPoints int       `gorm:"column:reward_points"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID,
		Name:         c.Name,
		Active:       c.Active,
		RewardPoints: c.RewardPoints,
	}

	if c.Address != nil {
		s.Street = c.Address.Street
		s.Number = c.Address.Number
		s.Zip = c.Address.Zip
		s.City = c.Address.City
	}

	return s
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	c := &customer.Customer{
		ID:           s.ID,
		Name:         s.Name,
		Active:       s.Active,
		RewardPoints: s.RewardPoints,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	// an empty street means the customer never had an address
	if s.Street != "" {
		c.Address = &customer.Address{
			Street: s.Street,
			Number: s.Number,
			Zip:    s.Zip,
			City:   s.City,
		}
	}

	return c
}

type ProductSchema struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ProductSchema) TableName() string {
	return "products"
}

func (s *ProductSchema) ToDomainProduct() *product.Product {
	if s == nil {
		return nil
	}

	return &product.Product{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type OrderSchema struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CustomerID string    `gorm:"column:customer_id"`
	Total      float64   `gorm:"column:total"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

func NewOrderSchema(o *checkout.Order) OrderSchema {
	return OrderSchema{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
		Items:      newOrderItemSchemas(o),
	}
}

func newOrderItemSchemas(o *checkout.Order) []OrderItemSchema {
	items := make([]OrderItemSchema, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemSchema{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Position:  i,
		}
	}

	return items
}

func (s *OrderSchema) ToDomainOrder() *checkout.Order {
	if s == nil {
		return nil
	}

	items := make([]checkout.OrderItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.ToDomainOrderItem()
	}

	return &checkout.Order{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id"`
	ProductID string  `gorm:"column:product_id"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	Quantity  int     `gorm:"column:quantity"`
	Position  int     `gorm:"column:position"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}

func (s OrderItemSchema) ToDomainOrderItem() checkout.OrderItem {
	return checkout.OrderItem{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}
}

// Schemas lists every table model, used to auto migrate non postgres
// databases.
func Schemas() []interface{} {
	return []interface{}{
		&CustomerSchema{},
		&ProductSchema{},
		&OrderSchema{},
		&OrderItemSchema{},
	}
}
