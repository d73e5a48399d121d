package venues

import (
	"context"
	"strings"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

// Store defines persistence operations for stored venues.
type Store interface {
	ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	UpdateVenueStatus(ctx context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error)
}

// Service coordinates the booking workflow on discovered venues.
type Service interface {
	ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	UpdateVenueStatus(ctx context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error)
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter.UserID = strings.TrimSpace(filter.UserID)
	filter.City = strings.TrimSpace(filter.City)
	filter.State = strings.TrimSpace(filter.State)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, store.ErrInvalidStatus
	}
	return s.store.ListVenues(ctx, filter)
}

func (s *service) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, store.ErrVenueNotFound
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) UpdateVenueStatus(ctx context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, store.ErrVenueNotFound
	}
	if !status.Valid() {
		return nil, store.ErrInvalidStatus
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		notes = &trimmed
	}
	return s.store.UpdateVenueStatus(ctx, id, status, notes)
}
