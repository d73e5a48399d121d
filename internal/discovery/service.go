package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/metrics"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/places"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

// MetersPerMile converts search radii from miles to the meters the places API expects.
const MetersPerMile = 1609.34

// DefaultMaxResultsPerQuery caps how many candidates of one query get enriched.
const DefaultMaxResultsPerQuery = 5

// DefaultQueries is the category query list used when none is configured.
var DefaultQueries = []string{"bar", "live music", "music venue", "nightclub"}

// ExtendedQueries is a broader list aimed at country and roots venues.
var ExtendedQueries = []string{
	"bar",
	"live music",
	"music venue",
	"nightclub",
	"live music bar",
	"country music venue",
	"dancehall",
	"saloon",
	"honky tonk",
	"music hall",
}

// MilesToMeters converts a radius in miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}

// Store is the venue persistence the pipeline writes to.
type Store interface {
	// FindByNameCity returns store.ErrVenueNotFound when no venue matches.
	FindByNameCity(ctx context.Context, name, city string) (*models.Venue, error)
	// InsertVenue returns store.ErrVenueExists when the name and city are taken.
	InsertVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	UpdateContactFields(ctx context.Context, id string, fields models.ContactFields) error
}

// Config is the search policy of a discovery run.
type Config struct {
	// Queries run in order for every location.
	Queries []string
	// CategoryType is passed to the text search as the place type filter.
	CategoryType string
	// MaxResultsPerQuery caps enriched candidates per query. Zero selects
	// DefaultMaxResultsPerQuery, a negative value means no cap.
	MaxResultsPerQuery int
	// Source labels inserted venues.
	Source string
}

func (c Config) withDefaults() Config {
	if len(c.Queries) == 0 {
		c.Queries = DefaultQueries
	}
	if c.MaxResultsPerQuery == 0 {
		c.MaxResultsPerQuery = DefaultMaxResultsPerQuery
	}
	if c.Source == "" {
		c.Source = models.SourceGooglePlaces
	}
	return c
}

// DiscoverRequest is the input of one discovery run.
type DiscoverRequest struct {
	Locations []models.Location `json:"locations"`
	// RadiusMiles applies to locations without their own radius.
	RadiusMiles float64 `json:"radius_miles,omitempty"`
	// UserID owns the inserted venues.
	UserID string `json:"user_id,omitempty"`
}

// Service runs the venue discovery pipeline.
type Service struct {
	places places.Client
	store  Store
	cfg    Config
	logger zerolog.Logger
}

// New builds a discovery Service. The places client is expected to be rate limited.
func New(client places.Client, st Store, cfg Config, logger zerolog.Logger) *Service {
	return &Service{
		places: client,
		store:  st,
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// Discover searches every location in order, persists venues that are not already
// stored and returns the run summary.
//
// Only a configuration problem of the places client is returned as an error before
// any work starts. Per-location and per-candidate failures are logged, counted in
// RunResult.Skipped and skipped. Cancellation is checked between locations; the
// partial result is returned with an error wrapping ctx.Err().
func (s *Service) Discover(ctx context.Context, req DiscoverRequest) (*models.RunResult, error) {
	if err := s.places.Validate(); err != nil {
		metrics.RunCounter.WithLabelValues("config_error").Inc()
		s.logger.Error().Err(err).Msg("Discovery run aborted")
		return nil, fmt.Errorf("discovery configuration: %w", err)
	}

	start := time.Now()
	r := &run{
		svc:    s,
		userID: req.UserID,
		result: &models.RunResult{Venues: []*models.Venue{}},
		logger: s.logger.With().
			Str("run_id", uuid.New().String()).
			Str("user_id", req.UserID).
			Logger(),
	}

	r.logger.Info().
		Int("locations", len(req.Locations)).
		Strs("queries", s.cfg.Queries).
		Msg("Discovery run started")

	for i, loc := range req.Locations {
		if err := ctx.Err(); err != nil {
			metrics.RunCounter.WithLabelValues("cancelled").Inc()
			r.logger.Warn().
				Err(err).
				Int("completed_locations", i).
				Msg("Discovery run cancelled")
			return r.result, fmt.Errorf("discovery cancelled after %d of %d locations: %w", i, len(req.Locations), err)
		}
		r.discoverLocation(ctx, loc, radiusFor(loc, req.RadiusMiles))
	}

	metrics.RunCounter.WithLabelValues("completed").Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())

	r.logger.Info().
		Int("discovered", r.result.Discovered).
		Int("new", r.result.New).
		Int("duplicates", r.result.Duplicates).
		Interface("skipped", r.result.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Discovery run completed")

	return r.result, nil
}

func radiusFor(loc models.Location, fallback float64) float64 {
	if loc.RadiusMiles > 0 {
		return loc.RadiusMiles
	}
	if fallback > 0 {
		return fallback
	}
	return models.DefaultRadiusMiles
}

// run holds the state of one Discover call.
type run struct {
	svc    *Service
	userID string
	result *models.RunResult
	logger zerolog.Logger
}

func (r *run) discoverLocation(ctx context.Context, loc models.Location, radiusMiles float64) {
	city := strings.TrimSpace(loc.City)
	state := strings.TrimSpace(loc.State)
	logger := r.logger.With().Str("city", city).Str("state", state).Logger()

	if city == "" || state == "" {
		logger.Warn().Msg("Skipping location without city or state")
		r.countSkip(metrics.SkipLocation)
		return
	}

	center, err := r.svc.places.Geocode(ctx, city+", "+state)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping location that could not be geocoded")
		r.countSkip(metrics.SkipLocation)
		return
	}

	radiusMeters := MilesToMeters(radiusMiles)
	found := r.collect(ctx, logger, center, radiusMeters, city, state)

	merged := MergeVenues(found)
	logger.Debug().
		Int("enriched", len(found)).
		Int("merged", len(merged)).
		Msg("Location searched")

	for _, v := range merged {
		r.result.Discovered++
		metrics.VenueCounter.WithLabelValues(metrics.OutcomeDiscovered).Inc()
		r.persist(ctx, logger, v)
	}
}

// collect runs every category query around center and enriches the capped candidates.
func (r *run) collect(ctx context.Context, logger zerolog.Logger, center models.Coordinate, radiusMeters float64, city, state string) []models.EnrichedVenue {
	cfg := r.svc.cfg
	seen := make(map[string]bool)
	var found []models.EnrichedVenue

	for _, query := range cfg.Queries {
		candidates, err := r.svc.places.TextSearch(ctx, query, center, radiusMeters, cfg.CategoryType)
		if err != nil {
			logger.Warn().Err(err).Str("query", query).Msg("Skipping failed category query")
			r.countSkip(metrics.SkipSearch)
			continue
		}
		if cfg.MaxResultsPerQuery > 0 && len(candidates) > cfg.MaxResultsPerQuery {
			candidates = candidates[:cfg.MaxResultsPerQuery]
		}

		for _, c := range candidates {
			if seen[c.PlaceID] {
				continue
			}
			seen[c.PlaceID] = true

			details, err := r.svc.places.Details(ctx, c.PlaceID)
			if err != nil {
				logger.Warn().Err(err).Str("place_id", c.PlaceID).Msg("Skipping candidate without details")
				r.countSkip(metrics.SkipDetails)
				continue
			}
			if details.Name == "" {
				details.Name = c.Name
			}
			found = append(found, r.svc.normalize(*details, city, state))
		}
	}

	return found
}

// normalize derives city, state, venue type and source for a detail record.
func (s *Service) normalize(d models.PlaceDetails, fallbackCity, fallbackState string) models.EnrichedVenue {
	city, state := ParseCityState(d.FormattedAddress, fallbackCity, fallbackState)
	return models.EnrichedVenue{
		PlaceDetails: d,
		City:         city,
		State:        state,
		VenueType:    Classify(d.Name, strings.Join(d.Types, " ")),
		Source:       s.cfg.Source,
	}
}

func (r *run) persist(ctx context.Context, logger zerolog.Logger, v models.EnrichedVenue) {
	logger = logger.With().Str("venue", v.Name).Str("venue_city", v.City).Logger()

	existing, err := r.svc.store.FindByNameCity(ctx, v.Name, v.City)
	switch {
	case err == nil:
		r.duplicate(ctx, logger, existing, v)
		return
	case !errors.Is(err, store.ErrVenueNotFound):
		logger.Warn().Err(err).Msg("Skipping venue after failed lookup")
		r.countSkip(metrics.SkipInsert)
		return
	}

	v.Score = Score(v)
	created, err := r.svc.store.InsertVenue(ctx, newVenue(v, r.userID))
	if errors.Is(err, store.ErrVenueExists) {
		// Another run inserted the same venue after our lookup.
		logger.Info().Msg("Venue inserted concurrently, counting as duplicate")
		r.result.Duplicates++
		metrics.VenueCounter.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping venue that failed to insert")
		r.countSkip(metrics.SkipInsert)
		return
	}

	r.result.New++
	r.result.Venues = append(r.result.Venues, created)
	metrics.VenueCounter.WithLabelValues(metrics.OutcomeInserted).Inc()
	logger.Debug().Str("venue_id", created.ID).Int("score", created.Score).Msg("Venue inserted")
}

func (r *run) duplicate(ctx context.Context, logger zerolog.Logger, existing *models.Venue, v models.EnrichedVenue) {
	r.result.Duplicates++
	metrics.VenueCounter.WithLabelValues(metrics.OutcomeDuplicate).Inc()

	fields := BackfillFields(existing, v)
	if fields.IsEmpty() {
		return
	}
	if err := r.svc.store.UpdateContactFields(ctx, existing.ID, fields); err != nil {
		logger.Warn().Err(err).Str("venue_id", existing.ID).Msg("Failed to backfill contact fields")
		return
	}
	logger.Debug().Str("venue_id", existing.ID).Msg("Backfilled contact fields")
}

func (r *run) countSkip(kind string) {
	switch kind {
	case metrics.SkipLocation:
		r.result.Skipped.Locations++
	case metrics.SkipSearch:
		r.result.Skipped.Searches++
	case metrics.SkipDetails:
		r.result.Skipped.Details++
	case metrics.SkipInsert:
		r.result.Skipped.Inserts++
	}
	metrics.SkipCounter.WithLabelValues(kind).Inc()
}

func newVenue(v models.EnrichedVenue, userID string) *models.Venue {
	return &models.Venue{
		UserID:        userID,
		Name:          strings.TrimSpace(v.Name),
		Address:       v.FormattedAddress,
		City:          v.City,
		State:         v.State,
		Phone:         v.Phone,
		Website:       v.Website,
		Email:         v.Email,
		VenueType:     v.VenueType,
		ContactStatus: models.StatusNotContacted,
		Rating:        v.Rating,
		Source:        v.Source,
		MapURL:        v.MapURL,
		PlaceID:       v.PlaceID,
		Score:         v.Score,
	}
}
