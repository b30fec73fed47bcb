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

// Clicker metric names
const (
	MetricNameClicks             = "clicker_clicks_total"
	MetricNameScoreEarned        = "clicker_score_earned_total"
	MetricNameMilestonesUnlocked = "clicker_milestones_unlocked_total"
	MetricNameUpgradesPurchased  = "clicker_upgrades_purchased_total"
	MetricNameScoreSpent         = "clicker_score_spent_total"
	MetricNameBossBattles        = "clicker_boss_battles_started_total"
	MetricNameBossDamage         = "clicker_boss_damage_total"
	MetricNameBossesDefeated     = "clicker_bosses_defeated_total"
	MetricNameResets             = "clicker_resets_total"
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

// Clicker metric help text
const (
	HelpTextClicks             = "Total number of clicks applied, by kind"
	HelpTextScoreEarned        = "Total score earned from clicks"
	HelpTextMilestonesUnlocked = "Total number of milestones unlocked, by threshold"
	HelpTextUpgradesPurchased  = "Total number of upgrades purchased, by power"
	HelpTextScoreSpent         = "Total score deducted by upgrade purchases"
	HelpTextBossBattles        = "Total number of boss battles started"
	HelpTextBossDamage         = "Total boss damage dealt through explicit damage requests"
	HelpTextBossesDefeated     = "Total number of bosses defeated"
	HelpTextResets             = "Total number of confirmed game resets"
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
	LabelThreshold = "threshold"
	LabelPower     = "power"
)

// Click kinds
const (
	ClickKindNormal   = "normal"
	ClickKindCritical = "critical"
	ClickKindBoss     = "boss"
)

// UnmatchedRoutePath labels requests no route matched
const UnmatchedRoutePath = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
