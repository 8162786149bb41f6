package mycontext

import (
	"context"

	"github.com/labstack/echo/v4"
)

// NewEchoContextAdapter exposes the request context of an echo handler so it
// can be handed to services and stores.
func NewEchoContextAdapter(c echo.Context) context.Context {
	return c.Request().Context()
}
