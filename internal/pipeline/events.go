package pipeline

import (
	"sync"
	"time"

	"vidozet/internal/domain"
)

// EventType classifies messages emitted during a pipeline run.
type EventType string

const (
	// EventTypeStatus carries a human-readable progress line.
	EventTypeStatus EventType = "status"
	// EventTypeInfo is a terminal informational dialog (title + message).
	EventTypeInfo EventType = "info"
	// EventTypeError is a terminal error dialog (title + message).
	EventTypeError EventType = "error"
	// EventTypeResult carries the summary text for the display region.
	EventTypeResult EventType = "result"
)

// Event is a sequenced payload consumed by the presentation layer. The
// worker goroutine never touches presentation state; it only publishes
// here, and the presentation loop drains on its own turn.
type Event struct {
	Seq       int64
	Timestamp time.Time
	RunID     string
	Type      EventType
	State     domain.RunState
	Title     string
	Message   string
}

// EventBus stores recent events and provides incremental reads plus a
// wake-up signal for a consumer loop.
type EventBus struct {
	mu        sync.RWMutex
	nextSeq   int64
	maxEvents int
	events    []Event
	updated   chan struct{}
}

// NewEventBus creates a bounded in-memory event buffer.
func NewEventBus(maxEvents int) *EventBus {
	if maxEvents <= 0 {
		maxEvents = 500
	}
	return &EventBus{
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
		updated:   make(chan struct{}, 1),
	}
}

// Publish appends one event, assigns its sequence and timestamp, and
// nudges any waiting consumer.
func (b *EventBus) Publish(event Event) Event {
	b.mu.Lock()
	b.nextSeq++
	event.Seq = b.nextSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	b.events = append(b.events, event)
	if len(b.events) > b.maxEvents {
		trim := len(b.events) - b.maxEvents
		b.events = append([]Event(nil), b.events[trim:]...)
	}
	b.mu.Unlock()

	select {
	case b.updated <- struct{}{}:
	default:
	}
	return event
}

// Since returns events with sequence strictly greater than seq.
func (b *EventBus) Since(seq int64) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.events) == 0 {
		return nil
	}

	out := make([]Event, 0, len(b.events))
	for _, event := range b.events {
		if event.Seq > seq {
			out = append(out, event)
		}
	}
	return out
}

// Updated signals when new events are available to drain.
func (b *EventBus) Updated() <-chan struct{} {
	return b.updated
}
