package postgrestore

import (
	"fmt"
	"time"

	"github.com/dddlab/backend/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN:             c.DB.DSN,
		MaxIdleConns:    c.DB.MaxIdleConns,
		MaxOpenConns:    c.DB.MaxOpenConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
		Debug:           c.Debug,
	}
}

func NewConnection(opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(opts.DSN), GormConfig(opts.Debug))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return db, nil
}

// GormConfig is shared by every dialect so the stores see the same
// translated errors.
func GormConfig(debug bool) *gorm.Config {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	return &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logLevel),
	}
}
