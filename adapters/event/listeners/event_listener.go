package listeners

import (
	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/domain/notification"
	"github.com/dddlab/backend/domain/product"
	"github.com/dddlab/backend/domain/pubsub"
	"go.uber.org/zap"
)

// Dependencies of the bootstrap handler set. PubSubService and
// NotificationService are optional, their handlers are skipped when nil.
type Dependencies struct {
	Logger *zap.SugaredLogger

	PubSubService pubsub.Service
	ChannelPrefix string

	NotificationService notification.Service
	NotificationSender  string
	NotificationToken   string
}

// RegisterAll registers the application handlers. Order matters: the log
// handlers run before anything leaving the process.
func RegisterAll(dispatcher domain.EventDispatcher, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	dispatcher.Register(customer.CustomerCreatedEventName, NewSendConsoleLog1Handler(logger))
	dispatcher.Register(customer.CustomerCreatedEventName, NewSendConsoleLog2Handler(logger))
	dispatcher.Register(customer.CustomerChangeAddressEventName, NewSendConsoleLogHandler(logger))
	dispatcher.Register(product.ProductCreatedEventName, NewSendEmailWhenProductIsCreatedHandler(logger))

	if deps.NotificationService != nil {
		dispatcher.Register(customer.CustomerChangeAddressEventName,
			NewNotifyAddressChangedHandler(deps.NotificationService, deps.NotificationSender, deps.NotificationToken))
	}

	if deps.PubSubService != nil {
		publisher := NewPublishEventHandler(deps.PubSubService, deps.ChannelPrefix)
		for _, eventName := range []string{
			customer.CustomerCreatedEventName,
			customer.CustomerChangeAddressEventName,
			product.ProductCreatedEventName,
		} {
			dispatcher.Register(eventName, publisher)
		}
	}
}
