package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Draw Metrics
var (
	DrawUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawUnitsTotal,
			Help: HelpTextDrawUnitsTotal,
		},
		[]string{LabelRarity},
	)

	DrawRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawRetriesTotal,
			Help: HelpTextDrawRetriesTotal,
		},
		[]string{LabelClass},
	)

	DrawBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawBatchesTotal,
			Help: HelpTextDrawBatchesTotal,
		},
		[]string{LabelOutcome},
	)

	DrawUnitAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDrawUnitAttempts,
			Help:    HelpTextDrawUnitAttempts,
			Buckets: DrawAttemptBuckets,
		},
	)
)

// History Metrics
var (
	HistoryRowsScanned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHistoryRowsScanned,
			Help:    HelpTextHistoryRowsScanned,
			Buckets: HistoryScanBuckets,
		},
	)

	HistoryPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHistoryPagesTotal,
			Help: HelpTextHistoryPagesTotal,
		},
		[]string{LabelExhausted},
	)
)

// Catalog Metrics
var (
	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelKind, LabelResult},
	)
)

// Discord Bot Metrics
var (
	DiscordCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommandsTotal,
			Help: HelpTextDiscordCommandsTotal,
		},
		[]string{LabelCommand},
	)
)
