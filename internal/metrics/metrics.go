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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	WorksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorksCreated,
			Help: HelpTextWorksCreated,
		},
		[]string{LabelKind, LabelType},
	)

	WorksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorksCompleted,
			Help: HelpTextWorksCompleted,
		},
		[]string{LabelKind, LabelResult},
	)

	WorksCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorksCancelled,
			Help: HelpTextWorksCancelled,
		},
		[]string{LabelReason},
	)

	CombatRounds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCombatRounds,
			Help:    HelpTextCombatRounds,
			Buckets: CombatRoundBuckets,
		},
		[]string{LabelMode},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	Deaths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDeaths,
			Help: HelpTextDeaths,
		},
	)

	ReportsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReportsCreated,
			Help: HelpTextReportsCreated,
		},
		[]string{LabelType},
	)

	FeedClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameFeedClients,
			Help: HelpTextFeedClients,
		},
		[]string{LabelTransport},
	)
)
