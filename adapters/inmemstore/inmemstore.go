package inmemstore

import (
	"fmt"

	"github.com/dddlab/backend/adapters/postgrestore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens a private in-memory sqlite database with the store
// tables migrated. Every call returns an empty database.
func NewConnection() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), postgrestore.GormConfig(false))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// each sqlite connection would get its own memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(postgrestore.Schemas()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
