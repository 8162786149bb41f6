package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// requestLogger logs one line per request once the handler returned.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			s.Logger.Infow("request",
				zap.String("request_id", s.requestID(c)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)

			return nil
		}
	}
}
