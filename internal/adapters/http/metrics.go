package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/solstice/pkg/domain"
)

// Metrics bundles the Prometheus collectors fed by engine lifecycle hooks.
// It carries its own registry so multiple handlers (or tests) never fight
// over global collector names.
type Metrics struct {
	registry      *prometheus.Registry
	stepsTotal    *prometheus.CounterVec
	solvesTotal   *prometheus.CounterVec
	solveDuration prometheus.Histogram
	requestsTotal *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solstice_steps_total",
				Help: "Total number of forced moves found, by rule",
			},
			[]string{"rule"},
		),
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solstice_solves_total",
				Help: "Total number of solve runs, by outcome",
			},
			[]string{"outcome"},
		),
		solveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "solstice_solve_duration_seconds",
				Help:    "Duration of solve runs",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solstice_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"code", "method"},
		),
	}
	m.registry.MustRegister(m.stepsTotal, m.solvesTotal, m.solveDuration, m.requestsTotal)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Combine them with
// any other hooks before handing them to the solver.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepFound: func(e *domain.StepEvent) {
			m.stepsTotal.WithLabelValues(e.Rule).Inc()
		},
		OnSolveEnd: func(e *domain.SolveEvent) {
			outcome := "stuck"
			if e.Solved {
				outcome = "solved"
			}
			m.solvesTotal.WithLabelValues(outcome).Inc()
			m.solveDuration.Observe(e.Duration.Seconds())
		},
	}
}

// Handler serves the registry in the Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument wraps next with a request counter labeled by status code and method.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.requestsTotal, next)
}
