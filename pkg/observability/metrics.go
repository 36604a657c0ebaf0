package observability

import (
	"context"
	"errors"

	"github.com/aretw0/numeral/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK              = "ok"
	OutcomeInvalid         = "invalid"
	OutcomeDivByZero       = "division_by_zero"
	OutcomeUnrepresentable = "not_representable"
	OutcomeError           = "error"
)

// Metrics holds the calculator's Prometheus collectors.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numeral_evaluations_total",
				Help: "Total number of evaluated expressions",
			},
			[]string{"system", "outcome", "cached"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numeral_evaluation_duration_seconds",
				Help:    "Duration of expression evaluations",
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
			[]string{"system"},
		),
	}
	reg.MustRegister(m.Evaluations, m.Duration)
	return m
}

// Hooks returns lifecycle hooks that record every finished evaluation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluated: func(ctx context.Context, e *domain.EvaluationEvent) {
			system := string(e.System)
			if system == "" {
				system = "none"
			}
			cached := "false"
			if e.Cached {
				cached = "true"
			}
			m.Evaluations.WithLabelValues(system, Outcome(e.Err), cached).Inc()
			m.Duration.WithLabelValues(system).Observe(e.Duration.Seconds())
		},
	}
}

// Outcome classifies an evaluation error into a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidExpression):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrDivisionByZero):
		return OutcomeDivByZero
	case errors.Is(err, domain.ErrNotRepresentable):
		return OutcomeUnrepresentable
	}
	return OutcomeError
}
