package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dddlab/backend/adapters/httpserver/model"
	"github.com/dddlab/backend/adapters/services"
	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/checkout"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/domain/product"
	"github.com/dddlab/backend/pkg/apperror"
	"github.com/dddlab/backend/pkg/config"
	"github.com/dddlab/backend/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithMetricsGatherer(gatherer prometheus.Gatherer) Options {
	return func(s *Server) error {
		s.gatherer = gatherer
		return nil
	}
}

type Server struct {
	router   *echo.Echo
	gatherer prometheus.Gatherer
	Config   *config.Config
	Logger   *zap.SugaredLogger

	// services
	CustomerService *services.CustomerService
	ProductService  *services.ProductService
	OrderService    *services.OrderService

	// event bus
	EventDispatcher domain.EventDispatcher
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router:   echo.New(),
		gatherer: prometheus.DefaultGatherer,
		Config:   cfg,
		Logger:   logger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))
	s.RegisterMetrics(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))
	s.RegisterEventRoutes(s.router.Group("/api/events"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(s.requestLogger())
	s.router.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) RegisterMetrics(router *echo.Group) {
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// domainError maps domain errors to their HTTP representation.
func domainError(err error) error {
	switch {
	case errors.Is(err, customer.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, checkout.ErrOrderNotFound):
		return apperror.ErrEntityNotFound(err)
	case errors.Is(err, customer.ErrAlreadyExists):
		return apperror.ErrConflict(err)
	case errors.Is(err, customer.ErrIDRequired),
		errors.Is(err, customer.ErrNameRequired),
		errors.Is(err, customer.ErrInvalidAddress),
		errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, checkout.ErrItemsRequired),
		errors.Is(err, checkout.ErrInvalidItemQuantity),
		errors.Is(err, checkout.ErrInvalidItemPrice),
		errors.Is(err, checkout.ErrItemProductRequired):
		return apperror.ErrInvalidParam(err)
	}

	return apperror.ErrInternalServer(err)
}

// notifyFailed reports a handler failure that happened after the change was
// saved. It returns false for any other error.
func (s *Server) notifyFailed(c echo.Context, err error) bool {
	if !errors.Is(err, services.ErrNotify) {
		return false
	}

	s.Logger.Errorw(err.Error(), zap.String("request_id", s.requestID(c)))
	sentry.WithContext(c).Error(err)

	return true
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, model.SuccessResponse{
		Message: "Created",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
