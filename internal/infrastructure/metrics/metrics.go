package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Record store metrics
	TransactionsAdded   prometheus.Counter
	TransactionsUpdated prometheus.Counter
	TransactionsRemoved prometheus.Counter
	TransactionAmount   *prometheus.HistogramVec
	StoredTransactions  prometheus.Gauge

	// Persistence metrics
	PersistenceWrites   *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	PersistenceDuration *prometheus.HistogramVec

	// Advisory metrics
	AdvisoryRequests *prometheus.CounterVec
	AdvisoryFailures *prometheus.CounterVec
	AdvisoryDuration *prometheus.HistogramVec
	TipsCacheHits    prometheus.Counter
	TipsCacheMisses  prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all metrics and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// Record store metrics
		TransactionsAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "paisa_transactions_added_total",
			Help: "Total number of transactions added",
		}),
		TransactionsUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "paisa_transactions_updated_total",
			Help: "Total number of transactions updated",
		}),
		TransactionsRemoved: f.NewCounter(prometheus.CounterOpts{
			Name: "paisa_transactions_removed_total",
			Help: "Total number of transactions removed",
		}),
		TransactionAmount: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paisa_transaction_amount",
				Help:    "Transaction amounts by type",
				Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type"},
		),
		StoredTransactions: f.NewGauge(prometheus.GaugeOpts{
			Name: "paisa_stored_transactions",
			Help: "Current number of transactions in the record store",
		}),

		// Persistence metrics
		PersistenceWrites: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_persistence_writes_total",
				Help: "Total persistence operations by key",
			},
			[]string{"key"},
		),
		PersistenceFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_persistence_failures_total",
				Help: "Total persistence failures by operation",
			},
			[]string{"op"},
		),
		PersistenceDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paisa_persistence_duration_seconds",
				Help:    "Duration of persistence operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),

		// Advisory metrics
		AdvisoryRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_advisory_requests_total",
				Help: "Total advisory requests by kind",
			},
			[]string{"kind"},
		),
		AdvisoryFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_advisory_failures_total",
				Help: "Total advisory failures by kind",
			},
			[]string{"kind"},
		),
		AdvisoryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paisa_advisory_duration_seconds",
				Help:    "Duration of advisory calls",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"kind"},
		),
		TipsCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "paisa_tips_cache_hits_total",
			Help: "Total tips served from cache",
		}),
		TipsCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "paisa_tips_cache_misses_total",
			Help: "Total tips cache misses",
		}),

		// API metrics
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paisa_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paisa_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"route"},
		),
	}
}
