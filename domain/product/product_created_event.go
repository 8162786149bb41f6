package product

import "github.com/dddlab/backend/domain"

const ProductCreatedEventName = "ProductCreatedEvent"

type ProductCreatedData struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductCreatedEvent struct {
	domain.BaseEvent
}

func NewProductCreatedEvent(p *Product) ProductCreatedEvent {
	return ProductCreatedEvent{
		BaseEvent: domain.NewBaseEvent(ProductCreatedEventName, ProductCreatedData{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		}),
	}
}

func (e ProductCreatedEvent) Data() ProductCreatedData {
	data, _ := e.EventData().(ProductCreatedData)

	return data
}
