package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// pgx serves the application connections; lib/pq is kept for golang-migrate.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Driver names accepted by Open.
const (
	DriverPgx = "pgx"
	DriverPQ  = "postgres"
)

const (
	pingTimeout    = 5 * time.Second
	defaultMaxWait = 30 * time.Second
	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Open establishes a database connection and retries until the instance responds.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := waitForPing(ctx, db, defaultMaxWait); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func waitForPing(ctx context.Context, db *sql.DB, maxWait time.Duration) error {
	deadline := time.Now().Add(maxWait)
	backoff := initialBackoff
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		// Respect caller cancellation.
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return fmt.Errorf("ping database: %w", lastErr)
}
