package events

import (
	"time"
)

// Event is one usage fact: an assembly was calculated, saved, loaded or
// deleted, a template was applied, an optimisation ran, a report was exported.
// Data carries one of the payload structs from usage_events.go.
type Event interface {
	Type() string
	// StreamID groups events per assembly or template name.
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	// Version is the 1-based position within the stream, 0 before append.
	Version() int
}

// EventHandler consumes usage events, e.g. the statistics projector.
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore keeps the usage log and fans appended events out to
// subscribers in the appending goroutine.
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

type usageRecord struct {
	kind    string
	stream  string
	payload interface{}
	at      time.Time
	version int
}

func (r usageRecord) Type() string { return r.kind }
func (r usageRecord) StreamID() string { return r.stream }
func (r usageRecord) Data() interface{} { return r.payload }
func (r usageRecord) Timestamp() time.Time { return r.at }
func (r usageRecord) Version() int { return r.version }

// NewEvent stamps a usage payload with the time it happened. The store
// assigns the version on append.
func NewEvent(eventType, streamID string, data interface{}, at time.Time) Event {
	return usageRecord{kind: eventType, stream: streamID, payload: data, at: at}
}

// withVersion copies e into the store's own record with its stream position.
func withVersion(e Event, streamID string, version int) Event {
	return usageRecord{
		kind:    e.Type(),
		stream:  streamID,
		payload: e.Data(),
		at:      e.Timestamp(),
		version: version,
	}
}
