package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// PlayerID returns the player the event concerns, empty when unset
func (e Event) PlayerID() string {
	id, _ := e.GetMetadataValue(MetadataKeyPlayerID).(string)
	return id
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process events already carry the struct; serialized ones (dead letters) need the round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously, in
// subscription order, and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var failed *DeliveryError
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			if failed == nil {
				failed = &DeliveryError{EventType: event.Type}
			}
			failed.Failed = append(failed.Failed, handler)
			failed.Errs = append(failed.Errs, err)
		}
	}

	if failed != nil {
		return failed
	}
	return nil
}

// DeliveryError lists the subscribers that failed to handle one event.
// Failed[i] returned Errs[i]; subscribers not listed handled the event.
type DeliveryError struct {
	EventType Type
	Failed    []Handler
	Errs      []error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf(LogMsgHandlerErrorFormat, len(e.Errs), e.EventType, e.Errs)
}

func (e *DeliveryError) Unwrap() []error {
	return e.Errs
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
