// Package metrics exposes Prometheus collectors for the scoring pipeline.
package metrics

import (
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sleep_scorer"

// Metrics holds pipeline collectors. A nil *Metrics is a no-op.
type Metrics struct {
	NightsProcessed    *prometheus.CounterVec
	EpisodesFlagged    *prometheus.CounterVec
	NapsScored         prometheus.Counter
	SegmentsDropped    prometheus.Counter
	SleepScore         prometheus.Histogram
	SegmentsPerRequest prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NightsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nights_processed_total",
			Help:      "Nights run through the pipeline by outcome (scored, invalid, no_primary).",
		}, []string{"outcome"}),
		EpisodesFlagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "episodes_flagged_total",
			Help:      "Episodes carrying a data-quality flag.",
		}, []string{"flag"}),
		NapsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "naps_scored_total",
			Help:      "Nap episodes scored.",
		}),
		SegmentsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_segments_dropped_total",
			Help:      "Raw in_bed container segments discarded during normalization.",
		}),
		SleepScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sleep_score",
			Help:      "Distribution of nightly sleep scores.",
			Buckets:   []float64{20, 40, 50, 60, 70, 80, 90, 100},
		}),
		SegmentsPerRequest: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "segments_per_request",
			Help:      "Raw segments received per scoring request.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.NightsProcessed, m.EpisodesFlagged, m.NapsScored,
			m.SegmentsDropped, m.SleepScore, m.SegmentsPerRequest)
	}
	return m
}

// ObserveRequest records the size of an incoming batch and its dropped container markers.
func (m *Metrics) ObserveRequest(segments, dropped int) {
	if m == nil {
		return
	}
	m.SegmentsPerRequest.Observe(float64(segments))
	m.SegmentsDropped.Add(float64(dropped))
}

// ObserveNight records the outcome of one night.
func (m *Metrics) ObserveNight(night *domain.NightResult) {
	if m == nil {
		return
	}

	for _, ep := range night.Episodes {
		for _, f := range ep.Flags {
			m.EpisodesFlagged.WithLabelValues(string(f)).Inc()
		}
	}
	m.NapsScored.Add(float64(len(night.Naps)))

	switch {
	case night.Score != nil:
		m.NightsProcessed.WithLabelValues("scored").Inc()
		m.SleepScore.Observe(float64(night.Score.Score))
	case night.Primary != nil:
		m.NightsProcessed.WithLabelValues("invalid").Inc()
	default:
		m.NightsProcessed.WithLabelValues("no_primary").Inc()
	}
}
