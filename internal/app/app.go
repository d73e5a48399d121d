package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/app/venues"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/database"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/discovery"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/places"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

// VenueStore is the persistence both the pipeline and the venue service use.
type VenueStore interface {
	discovery.Store
	venues.Store
}

// App holds the wired services shared by the daemon and the CLI.
type App struct {
	DB        *sql.DB
	Store     VenueStore
	Places    places.Client
	Discovery *discovery.Service
	Venues    venues.Service
}

// New opens the configured store and wires the discovery pipeline on top of it.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn().Msg("Using in-memory venue store, nothing will be persisted")
		a.Store = store.NewMemoryStore()
	default:
		db, err := database.Open(ctx, database.DriverPgx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		a.DB = db
		a.Store = store.New(db)
	}

	a.Places = places.NewRateLimitedClient(
		places.NewGoogleClient(cfg.Places.APIKey, cfg.Places.BaseURL, cfg.Places.Timeout),
		cfg.Discovery.SearchInterval,
		cfg.Discovery.DetailsInterval,
	)
	if err := a.Places.Validate(); err != nil {
		// Not fatal: the venue endpoints still work and each run reports the problem.
		logger.Warn().Err(err).Msg("Places provider is not configured")
	}

	a.Discovery = discovery.New(a.Places, a.Store, discovery.Config{
		Queries:            cfg.Discovery.Queries,
		CategoryType:       cfg.Discovery.CategoryType,
		MaxResultsPerQuery: cfg.Discovery.MaxResultsPerQuery,
		Source:             models.SourceGooglePlaces,
	}, logger.With().Str("component", "discovery").Logger())
	a.Venues = venues.New(a.Store)

	return a, nil
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
