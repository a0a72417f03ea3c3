package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending up migration. It reports whether
// anything was applied.
func RunMigrations(databaseURL string) (bool, error) {
	// separate database/sql handle; migrate does not speak pgxpool
	migrateDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	if err := migrateDB.Ping(); err != nil {
		return false, fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("create postgres driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return false, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("run migrations: %w", err)
	}
	return true, nil
}
