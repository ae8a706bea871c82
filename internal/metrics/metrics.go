package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "textscore"

// Analysis outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeCached   = "cached"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	AIPercent        prometheus.Histogram
	QualityScore     prometheus.Histogram
	OverlapScore     prometheus.Histogram
	CorpusDocuments  prometheus.Gauge
	CacheHits        prometheus.Counter
	SuggestionSource *prometheus.CounterVec
}

// New creates and registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	scoreBuckets := prometheus.LinearBuckets(0, 10, 11)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analysis requests by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent producing a report.",
			Buckets:   prometheus.DefBuckets,
		}),
		AIPercent: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_percent",
			Help:      "Distribution of reported AI likelihood percentages.",
			Buckets:   scoreBuckets,
		}),
		QualityScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quality_score",
			Help:      "Distribution of reported quality scores.",
			Buckets:   scoreBuckets,
		}),
		OverlapScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overlap_score",
			Help:      "Distribution of corpus overlap scores.",
			Buckets:   scoreBuckets,
		}),
		CorpusDocuments: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "corpus_documents",
			Help:      "Documents loaded into the overlap corpus.",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Reports served from the cache.",
		}),
		SuggestionSource: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_source_total",
			Help:      "Reports by suggestion source.",
		}, []string{"source"}),
	}
}

// ObserveReport records one freshly computed report
func (m *Metrics) ObserveReport(duration time.Duration, aiPercent int, quality float64, source string) {
	m.AnalysesTotal.WithLabelValues(OutcomeOK).Inc()
	m.AnalysisDuration.Observe(duration.Seconds())
	m.AIPercent.Observe(float64(aiPercent))
	m.QualityScore.Observe(quality)
	m.SuggestionSource.WithLabelValues(source).Inc()
}

// ObserveCacheHit records a report served from the cache
func (m *Metrics) ObserveCacheHit() {
	m.AnalysesTotal.WithLabelValues(OutcomeCached).Inc()
	m.CacheHits.Inc()
}

// ObserveRejected records a request refused before analysis
func (m *Metrics) ObserveRejected() {
	m.AnalysesTotal.WithLabelValues(OutcomeRejected).Inc()
}
