package pubsub

import "context"

// Message is a payload received on Channel. Pattern is set when the
// subscription matched the channel by pattern.
type Message struct {
	Channel string
	Pattern string
	Payload []byte
}

type Subscription interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	Close() error
}

type Service interface {
	Publish(ctx context.Context, channel string, payload []byte) error

	// Subscribe and PSubscribe return once the subscription is confirmed,
	// so messages published afterwards are received.
	Subscribe(ctx context.Context, channels ...string) (Subscription, error)
	PSubscribe(ctx context.Context, patterns ...string) (Subscription, error)
}
