package models

import (
	"fmt"
	"strings"
)

// DefaultRadiusMiles applies when a location does not specify a search radius.
const DefaultRadiusMiles = 25

// Location is one target area of a discovery run.
type Location struct {
	City        string  `json:"city"`
	State       string  `json:"state"`
	RadiusMiles float64 `json:"radius_miles,omitempty"`
}

// ParseLocation parses "City, ST" into a Location. The state is the last comma
// separated part, everything before it is the city.
func ParseLocation(s string) (Location, error) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return Location{}, fmt.Errorf("location %q: expected \"City, ST\"", s)
	}
	loc := Location{
		City:  strings.TrimSpace(s[:i]),
		State: strings.TrimSpace(s[i+1:]),
	}
	if loc.City == "" || loc.State == "" {
		return Location{}, fmt.Errorf("location %q: city and state are required", s)
	}
	return loc, nil
}

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Candidate is a search hit before its details are fetched.
type Candidate struct {
	PlaceID string
	Name    string
}

// PlaceDetails is the detail record returned by the places provider.
type PlaceDetails struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Phone            string
	Website          string
	Rating           *float64
	Types            []string
	MapURL           string
}

// EnrichedVenue is a detail record normalized by the discovery pipeline.
type EnrichedVenue struct {
	PlaceDetails
	Email     string
	City      string
	State     string
	VenueType VenueType
	Source    string
	Score     int
}

// SkipCounts tallies recoverable failures of a run by kind.
type SkipCounts struct {
	Locations int `json:"locations"`
	Searches  int `json:"searches"`
	Details   int `json:"details"`
	Inserts   int `json:"inserts"`
}

// RunResult summarises one discovery run.
type RunResult struct {
	Discovered int        `json:"discovered"`
	New        int        `json:"new"`
	Duplicates int        `json:"duplicates"`
	Venues     []*Venue   `json:"venues"`
	Skipped    SkipCounts `json:"skipped"`
}
