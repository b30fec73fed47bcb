package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/KissClicker_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus with background retries. When the inner bus
// reports a DeliveryError only the failed subscribers are retried, so
// subscribers that already handled the event see it once. Events that still
// fail after MaxRetries are handed to the dead-letter writer.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher. deadLetter may be nil,
// in which case exhausted events are only logged.
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		shutdown:   make(chan struct{}),
	}
}

// Publish delivers the event once synchronously. On failure a background
// retry loop takes over and Publish returns nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	deliver := p.inner.Publish
	var delivery *DeliveryError
	if errors.As(err, &delivery) {
		deliver = retryHandlers(delivery.Failed)
	}

	p.wg.Add(1)
	go p.retryLoop(event, deliver, err)
	return nil
}

// retryHandlers redelivers to the given subscribers only, keeping the ones
// that fail again for the next attempt
func retryHandlers(handlers []Handler) func(context.Context, Event) error {
	pending := handlers
	return func(ctx context.Context, event Event) error {
		var errs []error
		var still []Handler
		for _, handler := range pending {
			if err := handler(ctx, event); err != nil {
				still = append(still, handler)
				errs = append(errs, err)
			}
		}
		pending = still
		if len(errs) > 0 {
			return &DeliveryError{EventType: event.Type, Failed: still, Errs: errs}
		}
		return nil
	}
}

func (p *ResilientPublisher) retryLoop(event Event, deliver func(context.Context, Event) error, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, attempt))
		select {
		case <-p.shutdown:
			timer.Stop()
			log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "attempt", attempt)
			p.writeToDeadLetter(event, attempt-1, lastErr)
			return
		case <-timer.C:
		}

		if lastErr = deliver(ctx, event); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "error", lastErr)
	p.writeToDeadLetter(event, p.config.MaxRetries, lastErr)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
		return
	}
	logger.Info(LogMsgEventDeadLettered, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and waits for
// the retry goroutines to exit or ctx to expire
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
