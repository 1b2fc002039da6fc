package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameWorksCreated   = "works_created_total"
	MetricNameWorksCompleted = "works_completed_total"
	MetricNameWorksCancelled = "works_cancelled_total"
	MetricNameCombatRounds   = "combat_rounds"
	MetricNameLevelUps       = "character_level_ups_total"
	MetricNameDeaths         = "character_deaths_total"
	MetricNameReportsCreated = "reports_created_total"
	MetricNameFeedClients    = "feed_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextWorksCreated   = "Total number of works queued"
	HelpTextWorksCompleted = "Total number of works resolved"
	HelpTextWorksCancelled = "Total number of works removed before completion"
	HelpTextCombatRounds   = "Rounds fought per resolved combat"
	HelpTextLevelUps       = "Total number of level ups"
	HelpTextDeaths         = "Total number of characters killed in combat"
	HelpTextReportsCreated = "Total number of reports written"
	HelpTextFeedClients    = "Current number of connected live feed clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelKind      = "kind"
	LabelResult    = "result"
	LabelReason    = "reason"
	LabelMode      = "mode"
	LabelTransport = "transport"
)

// Label values
const (
	ModePvE = "pve"
	ModePvP = "pvp"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CombatRoundBuckets covers the PvE round budgets (3-20) and the PvP cap (10)
var CombatRoundBuckets = []float64{1, 2, 3, 5, 8, 10, 15, 20}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload for metrics"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
