package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the RUT operations.
type Metrics struct {
	// Validation outcomes: "valid", "invalid"
	Validations *prometheus.CounterVec

	// Identifiers produced by the generator
	Generated prometheus.Counter

	// Age estimates by outcome: "ok", "rejected"
	AgeEstimates *prometheus.CounterVec

	// Per-operation latency
	OperationLatency *prometheus.HistogramVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutkit_validations_total",
			Help: "Total identifiers validated by outcome",
		}, []string{"result"}),

		Generated: factory.NewCounter(prometheus.CounterOpts{
			Name: "rutkit_generated_total",
			Help: "Total identifiers generated",
		}),

		AgeEstimates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutkit_age_estimates_total",
			Help: "Total age estimates by outcome",
		}, []string{"outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rutkit_operation_duration_seconds",
			Help:    "Duration of RUT operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
	}
}

// IncrementValidation records one validation outcome.
func (m *Metrics) IncrementValidation(valid bool) {
	if m == nil {
		return
	}
	if valid {
		m.Validations.WithLabelValues("valid").Inc()
	} else {
		m.Validations.WithLabelValues("invalid").Inc()
	}
}

// AddGenerated records n generated identifiers.
func (m *Metrics) AddGenerated(n int) {
	if m != nil {
		m.Generated.Add(float64(n))
	}
}

// IncrementAgeEstimate records an age estimate outcome.
func (m *Metrics) IncrementAgeEstimate(outcome string) {
	if m != nil {
		m.AgeEstimates.WithLabelValues(outcome).Inc()
	}
}

// ObserveOperation records the duration of an operation.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
