package discovery

import (
	"strings"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

// DedupKey identifies a venue within a run: lowercase name and city joined by "-".
func DedupKey(name, city string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "-" + strings.ToLower(strings.TrimSpace(city))
}

// MergeVenues collapses venues sharing a DedupKey, keeping the order in which keys
// first appear. For phone, website, email, address and map URL the first non-empty
// value wins; a later entry only fills gaps.
func MergeVenues(venues []models.EnrichedVenue) []models.EnrichedVenue {
	index := make(map[string]int, len(venues))
	merged := make([]models.EnrichedVenue, 0, len(venues))

	for _, v := range venues {
		key := DedupKey(v.Name, v.City)
		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, v)
			continue
		}
		fillVenue(&merged[i], v)
	}

	return merged
}

func fillVenue(dst *models.EnrichedVenue, src models.EnrichedVenue) {
	fillString(&dst.Phone, src.Phone)
	fillString(&dst.Website, src.Website)
	fillString(&dst.Email, src.Email)
	fillString(&dst.FormattedAddress, src.FormattedAddress)
	fillString(&dst.MapURL, src.MapURL)
	if dst.Rating == nil && src.Rating != nil {
		rating := *src.Rating
		dst.Rating = &rating
	}
}

func fillString(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}

// BackfillFields returns the contact fields that are empty on existing and present on
// found. The result is empty when there is nothing to update.
func BackfillFields(existing *models.Venue, found models.EnrichedVenue) models.ContactFields {
	var fields models.ContactFields
	if existing.Phone == "" {
		fields.Phone = found.Phone
	}
	if existing.Website == "" {
		fields.Website = found.Website
	}
	if existing.Email == "" {
		fields.Email = found.Email
	}
	return fields
}
