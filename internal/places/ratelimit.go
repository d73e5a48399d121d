package places

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

// RateLimitedClient spaces calls to the wrapped Client. Geocode and text search share
// one limiter, detail lookups use another. Both have a burst of one, so consecutive
// calls of the same kind are at least one interval apart.
type RateLimitedClient struct {
	next    Client
	search  *rate.Limiter
	details *rate.Limiter
}

// NewRateLimitedClient wraps next. A non-positive interval disables that limiter.
func NewRateLimitedClient(next Client, searchInterval, detailsInterval time.Duration) *RateLimitedClient {
	return &RateLimitedClient{
		next:    next,
		search:  newLimiter(searchInterval),
		details: newLimiter(detailsInterval),
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Validate delegates to the wrapped client.
func (c *RateLimitedClient) Validate() error {
	return c.next.Validate()
}

// Geocode waits for the search limiter, then delegates.
func (c *RateLimitedClient) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	if err := c.search.Wait(ctx); err != nil {
		return models.Coordinate{}, fmt.Errorf("wait for rate limiter: %w", err)
	}
	return c.next.Geocode(ctx, address)
}

// TextSearch waits for the search limiter, then delegates.
func (c *RateLimitedClient) TextSearch(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, categoryType string) ([]models.Candidate, error) {
	if err := c.search.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}
	return c.next.TextSearch(ctx, query, center, radiusMeters, categoryType)
}

// Details waits for the details limiter, then delegates.
func (c *RateLimitedClient) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	if err := c.details.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}
	return c.next.Details(ctx, placeID)
}
