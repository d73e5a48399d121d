package database

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// Migration directions.
const (
	Up   = "up"
	Down = "down"
)

// Migrate applies (up) or rolls back (down) every migration under migrationsPath.
// A database that is already at the requested version is not an error.
func Migrate(db *sql.DB, migrationsPath, direction string, logger zerolog.Logger) error {
	if direction != Up && direction != Down {
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(absPath), "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn().Err(srcErr).Msg("Failed to close migration source")
		}
		if dbErr != nil {
			logger.Warn().Err(dbErr).Msg("Failed to close migration database")
		}
	}()

	if direction == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info().Str("direction", direction).Msg("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if errors.Is(verr, migrate.ErrNilVersion) {
		logger.Info().Str("direction", direction).Msg("Migrations applied, database is empty")
		return nil
	}
	logger.Info().
		Str("direction", direction).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations applied")
	return nil
}
