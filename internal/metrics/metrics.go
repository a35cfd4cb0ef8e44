package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for assessment counters.
const (
	OutcomeNormal   = "normal"
	OutcomeWarning  = "warning"
	OutcomeCritical = "critical"
	OutcomeError    = "error"
)

var (
	assessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitals_engine",
			Name:      "assessments_total",
			Help:      "Total number of per-vital assessments, partitioned by vital type and outcome.",
		},
		[]string{"vital_type", "outcome"},
	)

	monitorDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vitals_engine",
			Name:      "monitor_seconds",
			Help:      "Monitor batch latency in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)
)

// Register attaches the collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		assessmentsTotal,
		monitorDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveAssessment counts one per-vital assessment outcome.
func ObserveAssessment(vitalType, outcome string) {
	assessmentsTotal.WithLabelValues(vitalType, outcome).Inc()
}

// ObserveMonitor records the latency of one monitor batch.
func ObserveMonitor(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	monitorDurationSeconds.Observe(duration.Seconds())
}
