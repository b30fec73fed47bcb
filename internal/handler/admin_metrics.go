package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/KissClicker_Go/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for the admin dashboard
type AdminMetricsResponse struct {
	HTTP    HTTPMetrics    `json:"http"`
	Events  EventMetrics   `json:"events"`
	Clicker ClickerMetrics `json:"clicker"`
	SSE     SSEMetrics     `json:"sse"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type EventMetrics struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
	HandlerErrorsByType  map[string]float64 `json:"handler_errors_by_type"`
}

type ClickerMetrics struct {
	ClicksByKind        map[string]float64 `json:"clicks_by_kind"`
	ScoreEarned         float64            `json:"score_earned"`
	ScoreSpent          float64            `json:"score_spent"`
	MilestonesUnlocked  map[string]float64 `json:"milestones_unlocked"`
	UpgradesPurchased   map[string]float64 `json:"upgrades_purchased"`
	BossBattlesStarted  float64            `json:"boss_battles_started"`
	BossesDefeated      float64            `json:"bosses_defeated"`
	ExplicitBossDamage  float64            `json:"explicit_boss_damage"`
	Resets              float64            `json:"resets"`
}

type SSEMetrics struct {
	ClientCount int `json:"client_count"`
}

// ClientCounter reports connected stream clients
type ClientCounter interface {
	ClientCount() int
}

// AdminMetricsHandler handles admin metrics requests
type AdminMetricsHandler struct {
	clients  ClientCounter
	gatherer prometheus.Gatherer
}

// NewAdminMetricsHandler creates a new admin metrics handler over the default registry
func NewAdminMetricsHandler(clients ClientCounter) *AdminMetricsHandler {
	return &AdminMetricsHandler{clients: clients, gatherer: prometheus.DefaultGatherer}
}

// HandleGetMetrics returns JSON-formatted metrics from Prometheus
// @Summary Admin metrics
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/metrics [get]
func (h *AdminMetricsHandler) HandleGetMetrics(w http.ResponseWriter, _ *http.Request) {
	resp, err := gatherMetrics(h.gatherer)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgGatherMetricsFailed)
		return
	}

	if h.clients != nil {
		resp.SSE.ClientCount = h.clients.ClientCount()
	}

	respondJSON(w, http.StatusOK, resp)
}

func gatherMetrics(gatherer prometheus.Gatherer) (*AdminMetricsResponse, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP: HTTPMetrics{RequestsTotalByStatus: make(map[string]float64)},
		Events: EventMetrics{
			PublishedTotalByType: make(map[string]float64),
			HandlerErrorsByType:  make(map[string]float64),
		},
		Clicker: ClickerMetrics{
			ClicksByKind:       make(map[string]float64),
			MilestonesUnlocked: make(map[string]float64),
			UpgradesPurchased:  make(map[string]float64),
		},
	}

	for _, mf := range families {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumByLabel(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			var merged dto.Histogram
			for _, m := range mf.GetMetric() {
				mergeHistogram(&merged, m.GetHistogram())
			}
			if merged.GetSampleCount() > 0 {
				resp.HTTP.AvgLatencyMs = merged.GetSampleSum() / float64(merged.GetSampleCount()) * 1000
				resp.HTTP.P95LatencyMs = estimateQuantile(&merged, 0.95) * 1000
			}
		case metrics.MetricNameHTTPRequestsInFlight:
			resp.HTTP.InFlight = sum(mf)
		case metrics.MetricNameEventsPublished:
			sumByLabel(mf, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameEventHandlerErrors:
			sumByLabel(mf, metrics.LabelType, resp.Events.HandlerErrorsByType)
		case metrics.MetricNameClicks:
			sumByLabel(mf, metrics.LabelKind, resp.Clicker.ClicksByKind)
		case metrics.MetricNameScoreEarned:
			resp.Clicker.ScoreEarned = sum(mf)
		case metrics.MetricNameScoreSpent:
			resp.Clicker.ScoreSpent = sum(mf)
		case metrics.MetricNameMilestonesUnlocked:
			sumByLabel(mf, metrics.LabelThreshold, resp.Clicker.MilestonesUnlocked)
		case metrics.MetricNameUpgradesPurchased:
			sumByLabel(mf, metrics.LabelPower, resp.Clicker.UpgradesPurchased)
		case metrics.MetricNameBossBattles:
			resp.Clicker.BossBattlesStarted = sum(mf)
		case metrics.MetricNameBossesDefeated:
			resp.Clicker.BossesDefeated = sum(mf)
		case metrics.MetricNameBossDamage:
			resp.Clicker.ExplicitBossDamage = sum(mf)
		case metrics.MetricNameResets:
			resp.Clicker.Resets = sum(mf)
		}
	}

	return resp, nil
}

// sum adds every counter and gauge sample of a family
func sum(mf *dto.MetricFamily) float64 {
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue() + m.GetGauge().GetValue()
	}
	return total
}

func sumByLabel(mf *dto.MetricFamily, label string, into map[string]float64) {
	for _, m := range mf.GetMetric() {
		if value := getLabelValue(m, label); value != "" {
			into[value] += m.GetCounter().GetValue()
		}
	}
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// mergeHistogram folds src into dst; all series share the same buckets
func mergeHistogram(dst, src *dto.Histogram) {
	if src == nil {
		return
	}
	count := dst.GetSampleCount() + src.GetSampleCount()
	total := dst.GetSampleSum() + src.GetSampleSum()
	dst.SampleCount = &count
	dst.SampleSum = &total

	if len(dst.Bucket) == 0 {
		for _, b := range src.GetBucket() {
			cum := b.GetCumulativeCount()
			upper := b.GetUpperBound()
			dst.Bucket = append(dst.Bucket, &dto.Bucket{CumulativeCount: &cum, UpperBound: &upper})
		}
		return
	}
	for i, b := range src.GetBucket() {
		if i < len(dst.Bucket) {
			cum := dst.Bucket[i].GetCumulativeCount() + b.GetCumulativeCount()
			dst.Bucket[i].CumulativeCount = &cum
		}
	}
}

// estimateQuantile approximates the given quantile from histogram buckets
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	target := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= target {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
