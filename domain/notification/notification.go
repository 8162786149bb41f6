package notification

import "context"

// Notification is a message for a single recipient, usually a customer.
type Notification struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

type Service interface {
	SendNotification(ctx context.Context, notifications []Notification, from, token string) error
}
