// Package metrics exposes Prometheus counters for the puzzle service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service counters behind one registry so tests can
// create isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	PuzzlesGenerated    *prometheus.CounterVec
	GenerationRetries   prometheus.Counter
	GenerationFailures  prometheus.Counter
	DiscrepancyAnalyses prometheus.Counter
	TileClassifications *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		PuzzlesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorfocus_puzzles_generated_total",
			Help: "Puzzle grids generated, by color count.",
		}, []string{"color_count"}),
		GenerationRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "colorfocus_generation_retries_total",
			Help: "Distribution-validation retries during generation.",
		}),
		GenerationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "colorfocus_generation_failures_total",
			Help: "Generate calls that exhausted retries.",
		}),
		DiscrepancyAnalyses: factory.NewCounter(prometheus.CounterOpts{
			Name: "colorfocus_discrepancy_analyses_total",
			Help: "Discrepancy reports computed.",
		}),
		TileClassifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorfocus_tile_classifications_total",
			Help: "Flagged tiles classified, by verdict.",
		}, []string{"classification"}),
	}
}

// Handler serves this instance's registry at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
