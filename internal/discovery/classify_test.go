package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		venue      string
		categories string
		want       models.VenueType
	}{
		{name: "dancehall in name", venue: "Gruene Dancehall", want: models.VenueTypeDancehall},
		{name: "honky tonk beats saloon", venue: "Honky Tonk Saloon", want: models.VenueTypeHonkyTonk},
		{name: "honkytonk single word", venue: "The HonkyTonk", want: models.VenueTypeHonkyTonk},
		{name: "saloon", venue: "White Horse Saloon", want: models.VenueTypeSaloon},
		{name: "tavern is pub", venue: "Ginny's Tavern", want: models.VenueTypePub},
		{name: "music hall", venue: "Cain's Music Hall", want: models.VenueTypeMusicHall},
		{name: "club beats bar", venue: "Club Bar Deluxe", want: models.VenueTypeClub},
		{name: "category text counts", venue: "Stubb's", categories: "night_club point_of_interest", want: models.VenueTypeClub},
		{name: "grill is bar", venue: "Joe's Grill", want: models.VenueTypeBar},
		{name: "bar category", venue: "Donn's Depot", categories: "bar establishment", want: models.VenueTypeBar},
		{name: "case insensitive", venue: "THE SALOON", want: models.VenueTypeSaloon},
		{name: "default", venue: "Paramount Theatre", categories: "point_of_interest", want: models.VenueTypeVenue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.venue, tc.categories))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("Honky Tonk Saloon", "bar")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("Honky Tonk Saloon", "bar"))
	}
	assert.Equal(t, models.VenueTypeHonkyTonk, first)
}
