package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.VenueFilter{
		UserID: q.Get("user_id"),
		City:   q.Get("city"),
		State:  q.Get("state"),
		Status: models.ContactStatus(q.Get("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status filter"})
		return
	}

	venues, err := s.venues.ListVenues(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"venues": venues})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	venue, err := s.venues.GetVenue(r.Context(), id)
	if err != nil {
		writeVenueError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

type updateVenueRequest struct {
	ContactStatus models.ContactStatus `json:"contact_status"`
	Notes         *string              `json:"notes,omitempty"`
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.ContactStatus == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "contact_status is required"})
		return
	}

	venue, err := s.venues.UpdateVenueStatus(r.Context(), id, req.ContactStatus, req.Notes)
	if err != nil {
		writeVenueError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

func writeVenueError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrVenueNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "venue not found"})
	case errors.Is(err, store.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
