package httpserver

import (
	"github.com/dddlab/backend/adapters/event"
	"github.com/dddlab/backend/adapters/httpserver/model"
	"github.com/labstack/echo/v4"
)

// ListEventHandlers godoc
// @Summary ListEventHandlers
// @Description List the registered handlers of every event
// @Tags event
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=model.EventHandlersResponse}
// @Router /events/handlers [get]
func (s *Server) ListEventHandlers(c echo.Context) error {
	resp := model.EventHandlersResponse{}
	for eventName, handlers := range s.EventDispatcher.GetEventHandlers() {
		names := make([]string, len(handlers))
		for i, handler := range handlers {
			names[i] = event.HandlerName(handler)
		}

		resp[eventName] = names
	}

	return s.success(c, resp)
}

func (s *Server) RegisterEventRoutes(router *echo.Group) {
	router.GET("/handlers", s.ListEventHandlers)
}
