package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dddlab/backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

type Options struct {
	Addr     string
	Password string
	DB       int
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// NewConnection returns a client only once the server answered a PING.
func NewConnection(opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
