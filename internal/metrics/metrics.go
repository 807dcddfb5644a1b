package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the collectors exported on /metrics.
type Manager struct {
	// counters
	CounterRequests        *prometheus.CounterVec
	CounterRecommendations *prometheus.CounterVec
	CounterCatalogCache    *prometheus.CounterVec

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistRecommendedExercises prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitness", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitness", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterRecommendations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations",
		Help:      "The total number of served daily recommendations",
	}, []string{"goal"})
	counterCatalogCache := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "catalog_cache",
		Help:      "Exercise catalog cache lookups by result",
	}, []string{"result"})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histRecommendedExercises := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommended_exercises",
		Help:      "Number of exercises in a served recommendation",
		Buckets:   prometheus.LinearBuckets(0, 2, 11),
	})

	return &Manager{
		CounterRequests:          counterRequests,
		CounterRecommendations:   counterRecommendations,
		CounterCatalogCache:      counterCatalogCache,
		HistogramRequestDuration: histogramRequestDuration,
		HistRecommendedExercises: histRecommendedExercises,
	}
}
