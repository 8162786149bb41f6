package listeners

import (
	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/customer"
	"go.uber.org/zap"
)

type SendConsoleLog1Handler struct {
	logger *zap.SugaredLogger
}

func NewSendConsoleLog1Handler(logger *zap.SugaredLogger) *SendConsoleLog1Handler {
	return &SendConsoleLog1Handler{logger: logger}
}

func (h *SendConsoleLog1Handler) Handle(event domain.Event) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	h.logger.Info("This is the first console.log of the event: CustomerCreated")

	return nil
}

type SendConsoleLog2Handler struct {
	logger *zap.SugaredLogger
}

func NewSendConsoleLog2Handler(logger *zap.SugaredLogger) *SendConsoleLog2Handler {
	return &SendConsoleLog2Handler{logger: logger}
}

func (h *SendConsoleLog2Handler) Handle(event domain.Event) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	h.logger.Info("This is the second console.log of the event: CustomerCreated")

	return nil
}
