package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/discovery"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/places"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

func TestNewWithMemoryStore(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Places:   config.PlacesConfig{BaseURL: "http://127.0.0.1:0"},
	}

	a, err := New(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer a.Close()

	if _, ok := a.Store.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", a.Store)
	}
	if a.DB != nil {
		t.Fatal("memory store should not open a database")
	}

	_, err = a.Discovery.Discover(context.Background(), discovery.DiscoverRequest{
		Locations: []models.Location{{City: "Austin", State: "TX"}},
	})
	if !errors.Is(err, places.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	venues, err := a.Venues.ListVenues(context.Background(), models.VenueFilter{})
	if err != nil {
		t.Fatalf("ListVenues error: %v", err)
	}
	if len(venues) != 0 {
		t.Fatalf("expected no venues, got %d", len(venues))
	}
}
