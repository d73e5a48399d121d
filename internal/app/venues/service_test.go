package venues

import (
	"context"
	"errors"
	"testing"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/store"
)

func TestUpdateVenueStatusTrimsNotes(t *testing.T) {
	st := store.NewMemoryStore()
	v, err := st.InsertVenue(context.Background(), &models.Venue{Name: "Broken Spoke", City: "Austin"})
	if err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	svc := New(st)

	notes := "  left a voicemail \n"
	got, err := svc.UpdateVenueStatus(context.Background(), " "+v.ID+" ", models.StatusNoResponse, &notes)
	if err != nil {
		t.Fatalf("UpdateVenueStatus error: %v", err)
	}
	if got.Notes != "left a voicemail" || got.ContactStatus != models.StatusNoResponse {
		t.Fatalf("unexpected venue %+v", got)
	}
}

func TestServiceRejectsBadInput(t *testing.T) {
	svc := New(store.NewMemoryStore())
	ctx := context.Background()

	if _, err := svc.GetVenue(ctx, "  "); !errors.Is(err, store.ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	if _, err := svc.UpdateVenueStatus(ctx, "v-1", "ghosted", nil); !errors.Is(err, store.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.ListVenues(ctx, models.VenueFilter{Status: "ghosted"}); !errors.Is(err, store.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestServiceHonoursCancelledContext(t *testing.T) {
	svc := New(store.NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ListVenues(ctx, models.VenueFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
