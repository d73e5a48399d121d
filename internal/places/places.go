package places

import (
	"context"
	"errors"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

var (
	// ErrMissingAPIKey signals the provider has no credentials configured.
	ErrMissingAPIKey = errors.New("places api key is not configured")
	// ErrNotFound signals the provider returned no usable result.
	ErrNotFound = errors.New("place not found")
)

// DetailFields lists the fields requested for every detail lookup.
var DetailFields = []string{
	"place_id",
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"rating",
	"types",
	"url",
}

// Client defines the operations the discovery pipeline needs from a places provider.
type Client interface {
	// Validate reports configuration problems before any request is made.
	Validate() error

	// Geocode resolves free text such as "Austin, TX" to a coordinate.
	Geocode(ctx context.Context, address string) (models.Coordinate, error)

	// TextSearch runs one text query bounded by center and radius.
	TextSearch(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, categoryType string) ([]models.Candidate, error)

	// Details fetches the full record for a place id.
	Details(ctx context.Context, placeID string) (*models.PlaceDetails, error)
}
