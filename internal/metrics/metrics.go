// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitpath"

// Recorder collects engine events into its own registry.
type Recorder struct {
	registry *prometheus.Registry

	recommendations    *prometheus.CounterVec
	totalScores        prometheus.Histogram
	satisfaction       *prometheus.CounterVec
	reevaluations      prometheus.Counter
	trailingMean       *prometheus.GaugeVec
	learningPathSkills *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendations_total",
				Help:      "Total number of recommendations returned",
			},
			[]string{"user_id"},
		),
		totalScores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recommendation_total_score",
				Help:      "Distribution of total scores of returned recommendations",
				Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
			},
		),
		satisfaction: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "satisfaction_records_total",
				Help:      "Total number of satisfaction scores submitted",
			},
			[]string{"outcome"},
		),
		reevaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reevaluations_total",
				Help:      "Total number of re-evaluations triggered by low satisfaction",
			},
		),
		trailingMean: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "reevaluation_trailing_mean",
				Help:      "Trailing satisfaction mean that last triggered a re-evaluation",
			},
			[]string{"user_id"},
		),
		learningPathSkills: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "learning_path_skills_total",
				Help:      "Skill gaps seen while building learning paths",
			},
			[]string{"outcome"},
		),
	}

	r.registry.MustRegister(
		r.recommendations,
		r.totalScores,
		r.satisfaction,
		r.reevaluations,
		r.trailingMean,
		r.learningPathSkills,
	)

	return r
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) Recommended(userID string, totals []float64) {
	r.recommendations.WithLabelValues(userID).Add(float64(len(totals)))
	for _, total := range totals {
		r.totalScores.Observe(total)
	}
}

func (r *Recorder) SatisfactionRecorded(known bool) {
	outcome := "recorded"
	if !known {
		outcome = "ignored"
	}
	r.satisfaction.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Reevaluated(userID string, trailingMean float64) {
	r.reevaluations.Inc()
	r.trailingMean.WithLabelValues(userID).Set(trailingMean)
}

func (r *Recorder) LearningPathResolved(resolved, omitted int) {
	r.learningPathSkills.WithLabelValues("resolved").Add(float64(resolved))
	r.learningPathSkills.WithLabelValues("omitted").Add(float64(omitted))
}

// WriteTextfile dumps the current metrics in the node exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
