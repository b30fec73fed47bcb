package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/KissClicker_Go/internal/event"
	"github.com/osse101/KissClicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to clicker events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every clicker event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.ClickerEventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Undecodable payloads are
// counted as handler errors but never fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.ClickerClicked:
		p, err := event.DecodePayload[event.ClickedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		switch {
		case p.BossHit:
			Clicks.WithLabelValues(ClickKindBoss).Inc()
		case p.Critical:
			Clicks.WithLabelValues(ClickKindCritical).Inc()
		default:
			Clicks.WithLabelValues(ClickKindNormal).Inc()
		}
		ScoreEarned.Add(float64(p.Value))

	case event.MilestoneUnlocked:
		p, err := event.DecodePayload[event.MilestoneUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		MilestonesUnlocked.WithLabelValues(strconv.Itoa(p.Threshold)).Inc()

	case event.UpgradePurchased:
		p, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		UpgradesPurchased.WithLabelValues(strconv.Itoa(p.Power)).Inc()
		ScoreSpent.Add(float64(p.Deducted))

	case event.BossStarted:
		BossBattlesStarted.Inc()

	case event.BossDamaged:
		p, err := event.DecodePayload[event.BossDamagedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BossDamage.Add(float64(p.Damage))

	case event.BossDefeated:
		BossesDefeated.Inc()

	case event.ClickerReset:
		Resets.Inc()
	}
	return nil
}
