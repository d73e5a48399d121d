package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

// MemoryStore keeps venues in memory. It enforces the same case-insensitive name and
// city uniqueness as the Postgres index and is used for local runs and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	venues    map[string]*models.Venue
	nameIndex map[string]string
	now       func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		venues:    make(map[string]*models.Venue),
		nameIndex: make(map[string]string),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func nameCityKey(name, city string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(strings.TrimSpace(city))
}

// FindByNameCity returns the venue with the same name and city, ignoring case.
func (m *MemoryStore) FindByNameCity(_ context.Context, name, city string) (*models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.nameIndex[nameCityKey(name, city)]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return cloneVenue(m.venues[id]), nil
}

// InsertVenue stores a copy of venue with a new id.
func (m *MemoryStore) InsertVenue(_ context.Context, venue *models.Venue) (*models.Venue, error) {
	if venue == nil || strings.TrimSpace(venue.Name) == "" {
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

	m.mu.Lock()
	defer m.mu.Unlock()

	key := nameCityKey(venue.Name, venue.City)
	if _, exists := m.nameIndex[key]; exists {
		return nil, ErrVenueExists
	}

	now := m.now()
	venue.ID = uuid.New().String()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	m.venues[venue.ID] = cloneVenue(venue)
	m.nameIndex[key] = venue.ID

	return cloneVenue(venue), nil
}

// UpdateContactFields fills empty contact fields only.
func (m *MemoryStore) UpdateContactFields(_ context.Context, id string, fields models.ContactFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.venues[id]
	if !ok {
		return ErrVenueNotFound
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&v.Phone, fields.Phone)
	fill(&v.Website, fields.Website)
	fill(&v.Email, fields.Email)
	v.UpdatedAt = m.now()

	return nil
}

// GetVenue returns a venue by id.
func (m *MemoryStore) GetVenue(_ context.Context, id string) (*models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

// ListVenues returns venues matching filter, best score first.
func (m *MemoryStore) ListVenues(_ context.Context, filter models.VenueFilter) ([]*models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	venues := []*models.Venue{}
	for _, v := range m.venues {
		if filter.UserID != "" && v.UserID != filter.UserID {
			continue
		}
		if filter.City != "" && !strings.EqualFold(v.City, strings.TrimSpace(filter.City)) {
			continue
		}
		if filter.State != "" && !strings.EqualFold(v.State, strings.TrimSpace(filter.State)) {
			continue
		}
		if filter.Status != "" && v.ContactStatus != filter.Status {
			continue
		}
		venues = append(venues, cloneVenue(v))
	}

	sort.Slice(venues, func(i, j int) bool {
		if venues[i].Score != venues[j].Score {
			return venues[i].Score > venues[j].Score
		}
		return venues[i].Name < venues[j].Name
	})

	return venues, nil
}

// UpdateVenueStatus mirrors Store.UpdateVenueStatus.
func (m *MemoryStore) UpdateVenueStatus(_ context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}

	now := m.now()
	v.ContactStatus = status
	if notes != nil {
		v.Notes = *notes
	}
	if status == models.StatusAwaitingResponse {
		v.LastContactedAt = &now
	}
	v.UpdatedAt = now

	return cloneVenue(v), nil
}

func cloneVenue(src *models.Venue) *models.Venue {
	if src == nil {
		return nil
	}
	clone := *src
	if src.Rating != nil {
		r := *src.Rating
		clone.Rating = &r
	}
	if src.LastContactedAt != nil {
		t := *src.LastContactedAt
		clone.LastContactedAt = &t
	}
	return &clone
}
