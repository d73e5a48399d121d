package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

func TestParseLocations(t *testing.T) {
	locs, err := parseLocations([]string{"Austin, TX", "Tulsa, OK"})
	require.NoError(t, err)
	assert.Equal(t, []models.Location{{City: "Austin", State: "TX"}, {City: "Tulsa", State: "OK"}}, locs)

	_, err = parseLocations([]string{"Austin"})
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printSummary(&buf, &models.RunResult{
		Discovered: 3,
		New:        1,
		Duplicates: 1,
		Skipped:    models.SkipCounts{Inserts: 1},
		Venues: []*models.Venue{
			{Name: "Broken Spoke", City: "Austin", VenueType: models.VenueTypeSaloon, Score: 45},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "discovered: 3")
	assert.Contains(t, out, "new:        1")
	assert.Contains(t, out, "skipped:    1 (locations 0, searches 0, details 0, inserts 1)")
	assert.Contains(t, out, "+ Broken Spoke, Austin [saloon, score 45]")
}

func TestPrintVenues(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printVenues(&buf, nil)
	assert.Contains(t, buf.String(), "No venues found")

	buf.Reset()
	printVenues(&buf, []*models.Venue{
		{Name: "Broken Spoke", City: "Austin", State: "TX", VenueType: models.VenueTypeSaloon, ContactStatus: models.StatusBooked, Score: 45},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "SCORE"))
	assert.Contains(t, lines[1], "Broken Spoke")
	assert.Contains(t, lines[1], "booked")
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	rootCmd.SetArgs([]string{"migrate", "sideways"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}
