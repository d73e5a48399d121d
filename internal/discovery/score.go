package discovery

import (
	"strings"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

const (
	scoreEmail         = 30
	scorePhone         = 20
	scoreWebsite       = 15
	scorePreferredType = 25
	scoreRating        = 10

	// MaxScore is the highest score Score can return.
	MaxScore = scoreEmail + scorePhone + scoreWebsite + scorePreferredType + scoreRating

	highRating = 4.0
)

// Score rates how promising a venue is as a booking target, from 0 to MaxScore.
func Score(v models.EnrichedVenue) int {
	score := 0
	if v.Email != "" {
		score += scoreEmail
	}
	if v.Phone != "" {
		score += scorePhone
	}
	if v.Website != "" {
		score += scoreWebsite
	}
	if preferredType(v) {
		score += scorePreferredType
	}
	if v.Rating != nil && *v.Rating >= highRating {
		score += scoreRating
	}
	return score
}

// preferredType reports whether the venue is a honky tonk, dancehall or saloon,
// or carries "country" in one of its provider tags or its name.
func preferredType(v models.EnrichedVenue) bool {
	switch v.VenueType {
	case models.VenueTypeHonkyTonk, models.VenueTypeDancehall, models.VenueTypeSaloon:
		return true
	}
	for _, tag := range v.Types {
		if strings.Contains(strings.ToLower(tag), "country") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(v.Name), "country")
}
