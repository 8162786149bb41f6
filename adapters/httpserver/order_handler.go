package httpserver

import (
	"github.com/dddlab/backend/adapters/httpserver/model"
	"github.com/dddlab/backend/pkg/apperror"
	"github.com/dddlab/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// PlaceOrder godoc
// @Summary PlaceOrder
// @Description Place an order for a customer
// @Tags order
// @Accept json
// @Produce json
// @Param payload body model.PlaceOrderRequest true "Place order request"
// @Success 201 {object} model.SuccessResponse{data=checkout.Order}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.PlaceOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.Place(ctx, req.CustomerID, req.Inputs())
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.created(c, order)
}

// GetOrder godoc
// @Summary GetOrder
// @Description Get an order with its items
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=checkout.Order}
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	ctx := mycontext.NewEchoContextAdapter(c)

	order, err := s.OrderService.Get(ctx, c.Param("id"))
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, order)
}

// ListOrders godoc
// @Summary ListOrders
// @Description List orders
// @Tags order
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]checkout.Order}
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	ctx := mycontext.NewEchoContextAdapter(c)

	orders, err := s.OrderService.List(ctx)
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, orders)
}

// ReplaceOrderItems godoc
// @Summary ReplaceOrderItems
// @Description Replace every item of an order
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body model.ReplaceOrderItemsRequest true "New items"
// @Success 200 {object} model.SuccessResponse{data=checkout.Order}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id}/items [put]
func (s *Server) ReplaceOrderItems(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ReplaceOrderItemsRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.ReplaceItems(ctx, req.ID, req.Inputs())
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, order)
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
	router.PUT("/:id/items", s.ReplaceOrderItems)
}
