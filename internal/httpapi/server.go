package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/discovery"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/http/middleware"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/metrics"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

// DiscoveryService runs venue discovery.
type DiscoveryService interface {
	Discover(ctx context.Context, req discovery.DiscoverRequest) (*models.RunResult, error)
}

// VenueService exposes stored venues to the booking workflow.
type VenueService interface {
	ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	UpdateVenueStatus(ctx context.Context, id string, status models.ContactStatus, notes *string) (*models.Venue, error)
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	discovery   DiscoveryService
	venues      VenueService
	pinger      Pinger
	corsOrigins []string
	logger      zerolog.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithPinger makes /health report the reachability of p.
func WithPinger(p Pinger) Option {
	return func(s *Server) { s.pinger = p }
}

// WithCORSOrigins sets the origins allowed by the CORS middleware.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// New configures a Server.
func New(discoverySvc DiscoveryService, venues VenueService, logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		discovery: discoverySvc,
		venues:    venues,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes exposes the HTTP handlers wrapped in recovery, request logging and CORS.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/discovery", s.handleDiscover).Methods(http.MethodPost)
	api.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id}", s.handleGetVenue).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id}", s.handleUpdateVenue).Methods(http.MethodPatch)

	// CORS sits outside the router so preflight requests never hit method matching.
	var handler http.Handler = router
	handler = middleware.CORS(s.corsOrigins)(handler)
	handler = middleware.RequestLogging(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)
	return handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.pinger.PingContext(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "database unavailable"})
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
