package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

const venueColumns = `id, user_id, name, address, city, state, phone, website, email,
		       venue_type, contact_status, rating, source, map_url, place_id, score, notes,
		       created_at, updated_at, last_contacted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	var (
		v             models.Venue
		rating        sql.NullFloat64
		lastContacted sql.NullTime
	)

	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Address, &v.City, &v.State,
		&v.Phone, &v.Website, &v.Email, &v.VenueType, &v.ContactStatus, &rating,
		&v.Source, &v.MapURL, &v.PlaceID, &v.Score, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt, &lastContacted)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		r := rating.Float64
		v.Rating = &r
	}
	if lastContacted.Valid {
		t := lastContacted.Time
		v.LastContactedAt = &t
	}
	return &v, nil
}

// FindByNameCity returns the venue whose name and city equal the inputs, ignoring case
// and surrounding whitespace.
func (s *Store) FindByNameCity(ctx context.Context, name, city string) (*models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE lower(name) = lower($1) AND lower(city) = lower($2)
		LIMIT 1
	`

	v, err := scanVenue(s.db.QueryRowContext(ctx, query, strings.TrimSpace(name), strings.TrimSpace(city)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find venue by name and city: %w", err)
	}
	return v, nil
}

// InsertVenue stores a new venue and fills in its id and timestamps.
func (s *Store) InsertVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if strings.TrimSpace(venue.Name) == "" {
		return nil, errors.New("venue name is required")
	}
	if venue.ContactStatus == "" {
		venue.ContactStatus = models.StatusNotContacted
	}
	if !venue.ContactStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	if venue.VenueType == "" {
		venue.VenueType = models.VenueTypeVenue
	}

	venue.ID = uuid.New().String()

	var rating any
	if venue.Rating != nil {
		rating = *venue.Rating
	}

	query := `
		INSERT INTO venues (id, user_id, name, address, city, state, phone, website, email,
		                    venue_type, contact_status, rating, source, map_url, place_id, score, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		venue.ID, venue.UserID, venue.Name, venue.Address, venue.City, venue.State,
		venue.Phone, venue.Website, venue.Email, venue.VenueType, venue.ContactStatus,
		rating, venue.Source, venue.MapURL, venue.PlaceID, venue.Score, venue.Notes,
	).Scan(&venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrVenueExists
		}
		return nil, fmt.Errorf("insert venue: %w", err)
	}

	return venue, nil
}

// UpdateContactFields fills phone, website and email where the stored value is empty.
// Non-empty stored values are never overwritten.
func (s *Store) UpdateContactFields(ctx context.Context, id string, fields models.ContactFields) error {
	query := `
		UPDATE venues
		SET phone = COALESCE(NULLIF(phone, ''), $2),
		    website = COALESCE(NULLIF(website, ''), $3),
		    email = COALESCE(NULLIF(email, ''), $4),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, fields.Phone, fields.Website, fields.Email)
	if err != nil {
		return fmt.Errorf("update contact fields: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE id = $1
	`

	v, err := scanVenue(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return v, nil
}

// ListVenues returns venues matching filter, best score first.
func (s *Store) ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
	`

	var (
		clauses []string
		args    []any
	)

	if userID := strings.TrimSpace(filter.UserID); userID != "" {
		args = append(args, userID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		args = append(args, city)
		clauses = append(clauses, fmt.Sprintf("lower(city) = lower($%d)", len(args)))
	}
	if state := strings.TrimSpace(filter.State); state != "" {
		args = append(args, state)
		clauses = append(clauses, fmt.Sprintf("upper(state) = upper($%d)", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("contact_status = $%d", len(args)))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY score DESC, name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []*models.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

// UpdateVenueStatus sets the contact status and, when notes is non-nil, the notes of a
// venue. Moving to awaiting_response stamps last_contacted_at.
func (s *Store) UpdateVenueStatus(ctx context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var notesArg any
	if notes != nil {
		notesArg = *notes
	}

	query := `
		UPDATE venues
		SET contact_status = $2,
		    notes = COALESCE($3, notes),
		    last_contacted_at = CASE WHEN $2 = 'awaiting_response' THEN CURRENT_TIMESTAMP ELSE last_contacted_at END,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + venueColumns

	v, err := scanVenue(s.db.QueryRowContext(ctx, query, id, string(status), notesArg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update venue status: %w", err)
	}
	return v, nil
}
