package listeners

import (
	"context"
	"fmt"

	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/domain/notification"
	"go.uber.org/zap"
)

type SendConsoleLogHandler struct {
	logger *zap.SugaredLogger
}

func NewSendConsoleLogHandler(logger *zap.SugaredLogger) *SendConsoleLogHandler {
	return &SendConsoleLogHandler{logger: logger}
}

func (h *SendConsoleLogHandler) Handle(event domain.Event) error {
	changed, ok := event.(customer.CustomerChangeAddressEvent)
	if !ok {
		return nil
	}

	data := changed.Data()
	h.logger.Infof("Customer %s, %s had their address updated to %s",
		data.CustomerID, data.CustomerName, data.NewAddress)

	return nil
}

// NotifyAddressChangedHandler tells the customer, through the notification
// hub, that their address was updated.
type NotifyAddressChangedHandler struct {
	notificationService notification.Service
	sender              string
	token               string
}

func NewNotifyAddressChangedHandler(notificationService notification.Service, sender, token string) *NotifyAddressChangedHandler {
	return &NotifyAddressChangedHandler{
		notificationService: notificationService,
		sender:              sender,
		token:               token,
	}
}

func (h *NotifyAddressChangedHandler) Handle(event domain.Event) error {
	changed, ok := event.(customer.CustomerChangeAddressEvent)
	if !ok {
		return nil
	}

	data := changed.Data()
	notifications := []notification.Notification{
		{
			UserID:  data.CustomerID,
			Content: fmt.Sprintf("Hi %s, your address was updated to %s", data.CustomerName, data.NewAddress),
		},
	}

	if err := h.notificationService.SendNotification(context.Background(), notifications, h.sender, h.token); err != nil {
		return fmt.Errorf("send address changed notification: %w", err)
	}

	return nil
}
