package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/pubsub"
)

type EventMessage struct {
	EventName  string          `json:"event_name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// PublishEventHandler forwards any event it is registered for to the
// "<prefix><event name>" channel. Delivery is best effort.
type PublishEventHandler struct {
	pubsubService pubsub.Service
	channelPrefix string
}

func NewPublishEventHandler(pubsubService pubsub.Service, channelPrefix string) *PublishEventHandler {
	return &PublishEventHandler{
		pubsubService: pubsubService,
		channelPrefix: channelPrefix,
	}
}

func (h *PublishEventHandler) Channel(eventName string) string {
	return h.channelPrefix + eventName
}

func (h *PublishEventHandler) Handle(event domain.Event) error {
	data, err := json.Marshal(event.EventData())
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	payload, err := json.Marshal(EventMessage{
		EventName:  event.EventName(),
		OccurredAt: event.DateTimeOccurred(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("marshal event message: %w", err)
	}

	if err := h.pubsubService.Publish(context.Background(), h.Channel(event.EventName()), payload); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	return nil
}
