package event

import (
	"sync"

	"github.com/daygrid/daygrid/pkg/datekey"
)

// Store maps date keys to the ordered events of that day. Insertion order
// within a day is preserved, and a day whose last event is removed
// disappears from the mapping entirely.
type Store interface {
	ReplaceDay(key datekey.Key, events []Event)
	Append(key datekey.Key, e Event)
	// Update replaces the event with the given id within the day's
	// sequence, preserving its position. It reports whether a matching
	// event was found; a miss is a no-op.
	Update(key datekey.Key, eventId string, e Event) bool
	Remove(key datekey.Key, eventId string)
	// EventsOn returns the day's events in insertion order. The result is
	// never nil and is a copy the caller may hold freely.
	EventsOn(key datekey.Key) []Event
	// Keys returns every date key currently holding at least one event.
	Keys() []datekey.Key
}

// MemoryStore is the in-process Store for a single session. Each method
// locks around the whole read-modify-write of a day's sequence, so a day's
// entry is never partially visible to concurrent handlers.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[datekey.Key][]Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: map[datekey.Key][]Event{}}
}

func (s *MemoryStore) ReplaceDay(key datekey.Key, events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(events) == 0 {
		delete(s.days, key)
		return
	}
	s.days[key] = append([]Event(nil), events...)
}

func (s *MemoryStore) Append(key datekey.Key, e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days[key] = append(s.days[key], e)
}

func (s *MemoryStore) Update(key datekey.Key, eventId string, e Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.days[key]
	for i := range events {
		if events[i].ID == eventId {
			events[i] = e
			return true
		}
	}
	return false
}

func (s *MemoryStore) Remove(key datekey.Key, eventId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.days[key]
	remaining := make([]Event, 0, len(events))
	for _, e := range events {
		if e.ID != eventId {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == 0 {
		delete(s.days, key)
		return
	}
	s.days[key] = remaining
}

func (s *MemoryStore) EventsOn(key datekey.Key) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.days[key]...)
}

func (s *MemoryStore) Keys() []datekey.Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]datekey.Key, 0, len(s.days))
	for key := range s.days {
		keys = append(keys, key)
	}
	return keys
}
