package model

import (
	"context"

	"github.com/dddlab/backend/domain/product"
	"github.com/dddlab/backend/pkg/pagination"
	"github.com/dddlab/backend/pkg/validation"
)

type CreateProductRequest struct {
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	if err := validation.Conform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().Struct(r)
}

type ListProductsResponse struct {
	Products []product.Product   `json:"products"`
	PageInfo pagination.PageInfo `json:"page_info"`
} // @name model.ListProductsResponse
