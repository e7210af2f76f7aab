package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for validation counters.
const (
	OutcomeValid           = "valid"
	OutcomeInvalid         = "invalid"
	OutcomeChecksumWarning = "checksum_warning"
)

type Metrics struct {
	Validations       *prometheus.CounterVec
	ValidationSeconds *prometheus.HistogramVec
	NameMatches       *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscale_validations_total",
			Help: "Total identifier validations by kind and outcome",
		}, []string{"kind", "outcome"}),
		ValidationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fiscale_validation_duration_seconds",
			Help:    "Duration of identifier validations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"kind"}),
		NameMatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fiscale_name_matches_total",
			Help: "Total fiscal-code/name correspondence checks by result",
		}, []string{"result"}),
	}
}

// ObserveValidation records one validation with its outcome and duration.
func (m *Metrics) ObserveValidation(kind, outcome string, start time.Time) {
	m.Validations.WithLabelValues(kind, outcome).Inc()
	m.ValidationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// IncrementNameMatch records one correspondence check.
func (m *Metrics) IncrementNameMatch(matched bool) {
	result := "mismatch"
	if matched {
		result = "match"
	}
	m.NameMatches.WithLabelValues(result).Inc()
}
