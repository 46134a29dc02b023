// Package metrics exposes Prometheus instruments for health check
// evaluations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"nexaterminal/internal/model"
)

// Metrics groups the collectors recorded per assessment
type Metrics struct {
	Assessments *prometheus.CounterVec
	Violations  *prometheus.CounterVec
	Percentage  *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexa",
			Name:      "assessments_total",
			Help:      "Completed health check assessments by topic and grade class.",
		}, []string{"topic", "grade"}),
		Violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexa",
			Name:      "violations_total",
			Help:      "Violations found by topic and severity.",
		}, []string{"topic", "severity"}),
		Percentage: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nexa",
			Name:      "compliance_percentage",
			Help:      "Distribution of compliance percentages.",
			Buckets:   []float64{10, 25, 50, 75, 90, 100},
		}, []string{"topic"}),
	}
	reg.MustRegister(m.Assessments, m.Violations, m.Percentage)
	return m
}

// Observe records one report
func (m *Metrics) Observe(topic string, r *model.Report) {
	m.Assessments.WithLabelValues(topic, r.GradeClass).Inc()
	m.Percentage.WithLabelValues(topic).Observe(float64(r.Percentage))
	for _, v := range r.Violations {
		m.Violations.WithLabelValues(topic, string(v.Severity)).Inc()
	}
}
