package notificationhub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dddlab/backend/domain/notification"
	"github.com/dddlab/backend/pkg/config"
	"github.com/go-resty/resty/v2"
)

const requestTimeout = 5 * time.Second

var ErrEndpointRequired = errors.New("notification hub endpoint is required")

type NotificationRequest struct {
	From          string                      `json:"from"`
	Notifications []notification.Notification `json:"notifications"`
}

type NotificationHub struct {
	host   *url.URL
	client *resty.Client
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	return New(cfg.NotificationHub.Endpoint)
}

func New(endpoint string) (*NotificationHub, error) {
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse notification hub endpoint: %w", err)
	}

	return &NotificationHub{
		host:   u,
		client: resty.New().SetBaseURL(u.String()).SetTimeout(requestTimeout),
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest, token string) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", token)).
		SetBody(notificationReq).
		Post("/api/internal/notifications")

	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

// SendNotification pushes the notifications in a single request on behalf of
// the from sender.
func (n *NotificationHub) SendNotification(ctx context.Context,
	notifications []notification.Notification, from, token string) error {
	return n.pushNotification(ctx, NotificationRequest{
		From:          from,
		Notifications: notifications,
	}, token)
}
