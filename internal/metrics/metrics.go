package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics. Registered once at init via promauto.
var (
	GenerationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_energy_generation_runs_total",
		Help: "Number of telemetry generation runs.",
	})

	PointsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_energy_data_points_generated_total",
		Help: "Number of synthetic data points produced.",
	})

	StatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_energy_status_changes_total",
		Help: "Status change requests by outcome.",
	}, []string{"result"}) // applied | blocked | rejected

	AlertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_energy_alerts_total",
		Help: "Alerts appended to the alert log by severity.",
	}, []string{"severity"})
)
