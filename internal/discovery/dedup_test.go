package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

func enriched(name, city string) models.EnrichedVenue {
	return models.EnrichedVenue{PlaceDetails: models.PlaceDetails{Name: name}, City: city}
}

func TestDedupKeyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, DedupKey("The Blue Note", "Austin"), DedupKey("the blue note", "AUSTIN"))
	assert.Equal(t, "the blue note-austin", DedupKey("The Blue Note", "Austin"))
	assert.NotEqual(t, DedupKey("The Blue Note", "Austin"), DedupKey("The Blue Note", "Dallas"))
}

func TestMergeVenuesCollapsesSameKey(t *testing.T) {
	a := enriched("The Blue Note", "Austin")
	b := enriched("the blue note", "AUSTIN")

	merged := MergeVenues([]models.EnrichedVenue{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, "The Blue Note", merged[0].Name)
}

func TestMergeVenuesFirstNonEmptyWins(t *testing.T) {
	a := enriched("The Blue Note", "Austin")
	a.Phone = "555-1111"
	b := enriched("The Blue Note", "Austin")
	b.Phone = "555-2222"
	b.Website = "w.com"
	rating := 4.1
	b.Rating = &rating

	merged := MergeVenues([]models.EnrichedVenue{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, "555-1111", merged[0].Phone)
	assert.Equal(t, "w.com", merged[0].Website)
	require.NotNil(t, merged[0].Rating)
	assert.Equal(t, 4.1, *merged[0].Rating)
}

func TestMergeVenuesKeepsFirstAppearanceOrder(t *testing.T) {
	merged := MergeVenues([]models.EnrichedVenue{
		enriched("C", "Austin"),
		enriched("A", "Austin"),
		enriched("c", "austin"),
		enriched("B", "Austin"),
	})

	var names []string
	for _, v := range merged {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestBackfillFieldsOnlyFillsEmpty(t *testing.T) {
	existing := &models.Venue{Phone: "555-0000"}
	found := enriched("X", "Y")
	found.Phone = "555-9999"
	found.Website = "w.com"

	fields := BackfillFields(existing, found)
	assert.Equal(t, models.ContactFields{Website: "w.com"}, fields)

	full := &models.Venue{Phone: "1", Website: "2", Email: "3"}
	assert.True(t, BackfillFields(full, found).IsEmpty())
}
