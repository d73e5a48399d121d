package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrVenueNotFound signals no venue matched the lookup.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrVenueExists signals a venue with the same name and city is already stored.
	ErrVenueExists = errors.New("venue already exists")
	// ErrInvalidStatus signals an unknown contact status.
	ErrInvalidStatus = errors.New("invalid contact status")
)

// Store provides venue persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
