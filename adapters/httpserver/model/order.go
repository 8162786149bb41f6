package model

import (
	"github.com/dddlab/backend/adapters/services"
	"github.com/dddlab/backend/pkg/validation"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
} // @name model.OrderItemRequest

type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
} // @name model.PlaceOrderRequest

func (r *PlaceOrderRequest) Validate() error {
	return validation.Validate().Struct(r)
}

func (r *PlaceOrderRequest) Inputs() []services.OrderItemInput {
	return toOrderItemInputs(r.Items)
}

type ReplaceOrderItemsRequest struct {
	ID    string             `param:"id" validate:"required"`
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
} // @name model.ReplaceOrderItemsRequest

func (r *ReplaceOrderItemsRequest) Validate() error {
	return validation.Validate().Struct(r)
}

func (r *ReplaceOrderItemsRequest) Inputs() []services.OrderItemInput {
	return toOrderItemInputs(r.Items)
}

func toOrderItemInputs(items []OrderItemRequest) []services.OrderItemInput {
	inputs := make([]services.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return inputs
}
