package redisstore

import (
	"context"
	"fmt"

	"github.com/dddlab/backend/domain/pubsub"
	"github.com/redis/go-redis/v9"
)

// Broker implements pubsub.Service on redis PUBLISH/SUBSCRIBE.
type Broker struct {
	rdb *redis.Client
}

func NewBroker(rdb *redis.Client) *Broker {
	return &Broker{rdb: rdb}
}

func (b *Broker) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}

	return nil
}

func (b *Broker) Subscribe(ctx context.Context, channels ...string) (pubsub.Subscription, error) {
	return confirm(ctx, b.rdb.Subscribe(ctx, channels...))
}

func (b *Broker) PSubscribe(ctx context.Context, patterns ...string) (pubsub.Subscription, error) {
	return confirm(ctx, b.rdb.PSubscribe(ctx, patterns...))
}

// confirm waits for the first subscription reply.
func confirm(ctx context.Context, rps *redis.PubSub) (pubsub.Subscription, error) {
	if _, err := rps.Receive(ctx); err != nil {
		_ = rps.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	return &subscription{rps: rps}, nil
}

type subscription struct {
	rps *redis.PubSub
}

func (s *subscription) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := s.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Pattern: msg.Pattern,
		Payload: []byte(msg.Payload),
	}, nil
}

func (s *subscription) Close() error {
	return s.rps.Close()
}
