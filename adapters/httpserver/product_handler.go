package httpserver

import (
	"github.com/dddlab/backend/adapters/httpserver/model"
	"github.com/dddlab/backend/pkg/apperror"
	"github.com/dddlab/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// CreateProduct godoc
// @Summary CreateProduct
// @Description Create a product and notify ProductCreatedEvent
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 201 {object} model.SuccessResponse{data=product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	product, err := s.ProductService.Create(ctx, req.Name, req.Price)
	if err != nil && !s.notifyFailed(c, err) {
		return s.error(c, domainError(err))
	}

	return s.created(c, product)
}

// ListProducts godoc
// @Summary ListProducts
// @Description List products
// @Tags product
// @Produce json
// @Param request query model.ListRequest true "List products request"
// @Success 200 {object} model.SuccessResponse{data=model.ListProductsResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
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
	products, err := s.ProductService.List(ctx, pager)
	if err != nil {
		return s.error(c, domainError(err))
	}

	return s.success(c, model.ListProductsResponse{
		Products: products,
		PageInfo: pager.PageInfo(),
	})
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.GET("", s.ListProducts)
}
