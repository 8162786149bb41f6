package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// NewAppLogger reads APP_ENV directly because it runs before the config is
// loaded.
func NewAppLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(os.Getenv("APP_ENV"), "local") {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	// stderr/stdout return EINVAL on some platforms
	_ = l.Sync()
}
