package config_test

import (
	"testing"
	"time"

	"github.com/dddlab/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, "events.", cfg.Events.ChannelPrefix)
		assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
		assert.False(t, cfg.Dispatcher.ContinueOnError)
	})

	t.Run("it should read nested values from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DSN", "postgres://u:p@db:5432/app")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("NOTIFICATION_HUB_ENDPOINT", "http://hub.local")
		t.Setenv("DISPATCHER_CONTINUE_ON_ERROR", "true")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "postgres://u:p@db:5432/app", cfg.DB.DSN)
		assert.Equal(t, 3, cfg.Redis.DB)
		assert.Equal(t, "http://hub.local", cfg.NotificationHub.Endpoint)
		assert.True(t, cfg.Dispatcher.ContinueOnError)
	})

	t.Run("it should fail on malformed values", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}
