package frame

import "time"

// EventType represents lifecycle phases of frame operations
type EventType string

const (
	EventReadStart  EventType = "read_start"
	EventReadEnd    EventType = "read_end"
	EventFilter     EventType = "filter"
	EventSelect     EventType = "select"
	EventWriteStart EventType = "write_start"
	EventWriteEnd   EventType = "write_end"
)

// Event represents a lifecycle event of a frame operation
type Event struct {
	Type      EventType   // Type of event
	FrameID   string      // Frame lineage ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., path, row count, predicate)
}

// Observer interface for event subscribers
// Observers receive events at major operation phases
type Observer interface {
	OnEvent(event Event)
}

// The model is single-threaded (every operation completes before the next
// is issued), so a plain slice suffices.
var observers []Observer

// RegisterObserver subscribes an observer to all frame operation events.
func RegisterObserver(o Observer) {
	observers = append(observers, o)
}

// Notify publishes an event to every registered observer, stamping the
// timestamp if unset.
func Notify(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, o := range observers {
		o.OnEvent(event)
	}
}
