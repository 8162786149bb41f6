package postgrestore

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}
}

// Migrate applies every pending migration and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}

	return n, nil
}

// Rollback reverts at most max migrations, all of them when max is zero.
func Rollback(db *sql.DB, max int) (int, error) {
	n, err := migrate.ExecMax(db, "postgres", migrationSource(), migrate.Down, max)
	if err != nil {
		return n, fmt.Errorf("rollback migrations: %w", err)
	}

	return n, nil
}
