package httpserver

import (
	"github.com/dddlab/backend/adapters/httpserver/model"
	"github.com/dddlab/backend/pkg/apperror"
	"github.com/dddlab/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary CreateCustomer
// @Description Create a customer and notify CustomerCreatedEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	customer, err := s.CustomerService.Create(ctx, req.Name, req.DomainAddress())
	if err != nil && !s.notifyFailed(c, err) {
		return s.error(c, domainError(err))
	}

	return s.created(c, customer)
}

// GetCustomer godoc
// @Summary GetCustomer
// @Description Get a customer by id
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	ctx := mycontext.NewEchoContextAdapter(c)

	customer, err := s.CustomerService.Get(ctx, c.Param("id"))
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, customer)
}

// ListCustomers godoc
// @Summary ListCustomers
// @Description List customers
// @Tags customer
// @Produce json
// @Param request query model.ListRequest true "List customers request"
// @Success 200 {object} model.SuccessResponse{data=model.ListCustomersResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ListRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	pager := req.Pager()
	customers, err := s.CustomerService.List(ctx, pager)
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, model.ListCustomersResponse{
		Customers: customers,
		PageInfo:  pager.PageInfo(),
	})
}

// ChangeCustomerAddress godoc
// @Summary ChangeCustomerAddress
// @Description Change the customer address and notify CustomerChangeAddressEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.AddressRequest true "New address"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ChangeAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	customer, err := s.CustomerService.ChangeAddress(ctx, req.ID, req.AddressRequest.ToDomain())
	if err != nil && !s.notifyFailed(c, err) {
		return s.error(c, domainError(err))
	}

	return s.success(c, customer)
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
}
