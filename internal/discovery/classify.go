package discovery

import (
	"strings"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

type classifierRule struct {
	keywords  []string
	venueType models.VenueType
}

// Checked in order; the first rule with a matching keyword wins.
var classifierRules = []classifierRule{
	{keywords: []string{"dancehall"}, venueType: models.VenueTypeDancehall},
	{keywords: []string{"honky tonk", "honkytonk"}, venueType: models.VenueTypeHonkyTonk},
	{keywords: []string{"saloon"}, venueType: models.VenueTypeSaloon},
	{keywords: []string{"pub", "tavern"}, venueType: models.VenueTypePub},
	{keywords: []string{"music hall"}, venueType: models.VenueTypeMusicHall},
	{keywords: []string{"club", "nightclub"}, venueType: models.VenueTypeClub},
	{keywords: []string{"bar", "grill"}, venueType: models.VenueTypeBar},
}

// Classify maps a venue name and its joined category text to a VenueType using
// case-insensitive substring matches.
func Classify(name, categories string) models.VenueType {
	text := strings.ToLower(name + " " + categories)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.venueType
			}
		}
	}
	return models.VenueTypeVenue
}
