package model

import (
	"context"

	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/pkg/pagination"
	"github.com/dddlab/backend/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required"`
	Number int    `json:"number" validate:"required,gt=0"`
	Zip    string `json:"zip" mod:"trim" validate:"required"`
	City   string `json:"city" mod:"trim" validate:"required"`
} // @name model.AddressRequest

func (r AddressRequest) ToDomain() customer.Address {
	return customer.Address{
		Street: r.Street,
		Number: r.Number,
		Zip:    r.Zip,
		City:   r.City,
	}
}

type CreateCustomerRequest struct {
	Name    string          `json:"name" mod:"trim" validate:"required,max=255"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	if err := validation.Conform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().Struct(r)
}

func (r *CreateCustomerRequest) DomainAddress() *customer.Address {
	if r.Address == nil {
		return nil
	}

	address := r.Address.ToDomain()

	return &address
}

type ChangeAddressRequest struct {
	ID string `param:"id" validate:"required"`
	AddressRequest
} // @name model.ChangeAddressRequest

func (r *ChangeAddressRequest) Validate(ctx context.Context) error {
	if err := validation.Conform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().Struct(r)
}

type ListRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1,max=100000"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
} // @name model.ListRequest

func (r *ListRequest) Validate() error {
	return validation.Validate().Struct(r)
}

func (r *ListRequest) Pager() *pagination.Pager {
	return pagination.NewPager(r.Page, r.Limit)
}

type ListCustomersResponse struct {
	Customers []customer.Customer `json:"customers"`
	PageInfo  pagination.PageInfo `json:"page_info"`
} // @name model.ListCustomersResponse
