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

// Clicker Metrics
var (
	Clicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClicks,
			Help: HelpTextClicks,
		},
		[]string{LabelKind},
	)

	ScoreEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreEarned,
			Help: HelpTextScoreEarned,
		},
	)

	MilestonesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestonesUnlocked,
			Help: HelpTextMilestonesUnlocked,
		},
		[]string{LabelThreshold},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelPower},
	)

	ScoreSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreSpent,
			Help: HelpTextScoreSpent,
		},
	)

	BossBattlesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBossBattles,
			Help: HelpTextBossBattles,
		},
	)

	BossDamage = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBossDamage,
			Help: HelpTextBossDamage,
		},
	)

	BossesDefeated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBossesDefeated,
			Help: HelpTextBossesDefeated,
		},
	)

	Resets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResets,
			Help: HelpTextResets,
		},
	)
)
