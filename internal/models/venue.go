package models

import "time"

// VenueType is the coarse classification assigned to a discovered venue.
type VenueType string

const (
	VenueTypeDancehall VenueType = "dancehall"
	VenueTypeHonkyTonk VenueType = "honky_tonk"
	VenueTypeSaloon    VenueType = "saloon"
	VenueTypePub       VenueType = "pub"
	VenueTypeMusicHall VenueType = "music_hall"
	VenueTypeClub      VenueType = "club"
	VenueTypeBar       VenueType = "bar"
	VenueTypeVenue     VenueType = "venue"
)

// ContactStatus tracks where a venue sits in the booking outreach flow.
type ContactStatus string

const (
	StatusNotContacted     ContactStatus = "not_contacted"
	StatusAwaitingResponse ContactStatus = "awaiting_response"
	StatusResponded        ContactStatus = "responded"
	StatusBooked           ContactStatus = "booked"
	StatusDeclined         ContactStatus = "declined"
	StatusNoResponse       ContactStatus = "no_response"
)

// Valid reports whether s is one of the known contact statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusNotContacted, StatusAwaitingResponse, StatusResponded,
		StatusBooked, StatusDeclined, StatusNoResponse:
		return true
	}
	return false
}

// SourceGooglePlaces labels venues created by the discovery pipeline.
const SourceGooglePlaces = "google_places"

// Venue is a persisted booking target.
type Venue struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id,omitempty"`
	Name            string        `json:"name"`
	Address         string        `json:"address"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	Phone           string        `json:"phone,omitempty"`
	Website         string        `json:"website,omitempty"`
	Email           string        `json:"email,omitempty"` // never set by discovery
	VenueType       VenueType     `json:"venue_type"`
	ContactStatus   ContactStatus `json:"contact_status"`
	Rating          *float64      `json:"rating,omitempty"`
	Source          string        `json:"source"`
	MapURL          string        `json:"map_url,omitempty"`
	PlaceID         string        `json:"place_id,omitempty"`
	Score           int           `json:"score"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	LastContactedAt *time.Time    `json:"last_contacted_at,omitempty"`
}

// ContactFields carries the contact columns that discovery may backfill.
// Empty values mean "leave unchanged".
type ContactFields struct {
	Phone   string
	Website string
	Email   string
}

// IsEmpty reports whether no field is set.
func (c ContactFields) IsEmpty() bool {
	return c.Phone == "" && c.Website == "" && c.Email == ""
}

// VenueFilter narrows venue listings.
type VenueFilter struct {
	UserID string
	City   string
	State  string
	Status ContactStatus
}
