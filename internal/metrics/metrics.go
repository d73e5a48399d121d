package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Skip kinds used as the "kind" label of SkipCounter.
const (
	SkipLocation = "location"
	SkipSearch   = "search"
	SkipDetails  = "details"
	SkipInsert   = "insert"
)

// Venue outcomes used as the "outcome" label of VenueCounter.
const (
	OutcomeDiscovered = "discovered"
	OutcomeInserted   = "inserted"
	OutcomeDuplicate  = "duplicate"
)

var (
	RunCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_discovery_runs_total",
			Help: "Total number of discovery runs.",
		},
		[]string{"status"},
	)
	VenueCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_discovery_venues_total",
			Help: "Venues seen by discovery runs, by outcome.",
		},
		[]string{"outcome"},
	)
	SkipCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_discovery_skips_total",
			Help: "Recoverable failures skipped during discovery runs.",
		},
		[]string{"kind"},
	)
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "venue_discovery_run_duration_seconds",
			Help:    "Wall time of discovery runs.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
)

func init() {
	prometheus.MustRegister(RunCounter)
	prometheus.MustRegister(VenueCounter)
	prometheus.MustRegister(SkipCounter)
	prometheus.MustRegister(RunDuration)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
