package events

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultRetention is the number of events kept per stream and in the global log
const DefaultRetention = 10000

// InMemoryEventStore keeps recent events and dispatches them to subscribers
// synchronously, after the append has been committed.
type InMemoryEventStore struct {
	streams     map[string][]Event
	versions    map[string]int
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	position    int
	allEvents   []Event
	retention   int
	logger      *zap.Logger
}

func NewInMemoryEventStore(retention int, logger *zap.Logger) *InMemoryEventStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		versions:    make(map[string]int),
		subscribers: make(map[string][]EventHandler),
		allEvents:   make([]Event, 0),
		retention:   retention,
		logger:      logger.With(zap.String("component", "event_store")),
	}
}

// Verify interface compliance
var _ EventStore = (*InMemoryEventStore)(nil)

func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()

	s.versions[streamID]++
	eventWithVersion := withVersion(event, streamID, s.versions[streamID])

	s.streams[streamID] = trim(append(s.streams[streamID], eventWithVersion), s.retention)
	s.allEvents = trim(append(s.allEvents, eventWithVersion), s.retention)
	s.position++

	handlers := append([]EventHandler(nil), s.subscribers[event.Type()]...)
	s.mutex.Unlock()

	s.notifySubscribers(handlers, eventWithVersion)
	return nil
}

// ReadEvents returns the retained events of a stream with version >= fromVersion
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := []Event{}
	for _, e := range s.streams[streamID] {
		if e.Version() >= fromVersion {
			result = append(result, e)
		}
	}
	return result, nil
}

// ReadAllEvents returns retained events from the given global position.
// Positions count every appended event, including ones no longer retained.
func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	first := s.position - len(s.allEvents)
	if fromPosition < first {
		fromPosition = first
	}
	if fromPosition >= s.position {
		return []Event{}, nil
	}

	return append([]Event(nil), s.allEvents[fromPosition-first:]...), nil
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		newHandlers := make([]EventHandler, 0)
		for _, h := range handlers {
			if h != handler {
				newHandlers = append(newHandlers, h)
			}
		}
		s.subscribers[eventType] = newHandlers
	}

	return nil
}

// notifySubscribers logs handler failures; a failing projection never fails the append
func (s *InMemoryEventStore) notifySubscribers(handlers []EventHandler, event Event) {
	for _, handler := range handlers {
		if !handler.CanHandle(event.Type()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			s.logger.Warn("event handler failed",
				zap.String("event", event.Type()),
				zap.String("stream", event.StreamID()),
				zap.Error(err))
		}
	}
}

func trim(events []Event, retention int) []Event {
	if len(events) <= retention {
		return events
	}
	return append([]Event(nil), events[len(events)-retention:]...)
}
