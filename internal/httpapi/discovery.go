package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/discovery"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/logging"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/places"
)

const maxLocationsPerRun = 50

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	var req discovery.DiscoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// Validation. Locations without city or state are skipped by the run.
	if len(req.Locations) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one location is required"})
		return
	}
	if len(req.Locations) > maxLocationsPerRun {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many locations"})
		return
	}
	for _, loc := range req.Locations {
		if loc.RadiusMiles < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "radius_miles must not be negative"})
			return
		}
	}
	if req.RadiusMiles < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "radius_miles must not be negative"})
		return
	}

	ctx := r.Context()
	if req.UserID != "" {
		ctx = context.WithValue(ctx, logging.UserIDKey, req.UserID)
	}

	result, err := s.discovery.Discover(ctx, req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case errors.Is(err, places.ErrMissingAPIKey):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "venue discovery is not configured"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, discoveryCancelled{Error: err.Error(), Partial: result})
	default:
		logging.WithContext(ctx).Error().Err(err).Msg("Discovery run failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

type discoveryCancelled struct {
	Error   string            `json:"error"`
	Partial *models.RunResult `json:"partial,omitempty"`
}
