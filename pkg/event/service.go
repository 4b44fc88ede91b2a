package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daygrid/daygrid/pkg/category"
	"github.com/daygrid/daygrid/pkg/datekey"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrEmptyTitle = fmt.Errorf("event title must not be empty")

// Service owns all event mutations and lookups. The store behind it is the
// only mutable state of the session; readers receive copies.
type Service interface {
	EventsForDate(ctx context.Context, date time.Time) ([]Event, error)
	// SearchForDate returns the order-preserving subsequence of the day's
	// events whose title or description contains term, case-insensitively.
	// An empty term returns the full day.
	SearchForDate(ctx context.Context, date time.Time, term string) ([]Event, error)
	Create(ctx context.Context, date time.Time, draft Event) (Event, error)
	Update(ctx context.Context, date time.Time, eventId string, draft Event) (Event, error)
	Delete(ctx context.Context, date time.Time, eventId string) error
}

type ServiceImpl struct {
	store Store
}

func NewService(store Store) *ServiceImpl {
	return &ServiceImpl{store}
}

func (s *ServiceImpl) EventsForDate(ctx context.Context, date time.Time) ([]Event, error) {
	return s.store.EventsOn(datekey.Encode(date)), nil
}

func (s *ServiceImpl) SearchForDate(ctx context.Context, date time.Time, term string) ([]Event, error) {
	events := s.store.EventsOn(datekey.Encode(date))
	if term == "" {
		return events, nil
	}

	needle := strings.ToLower(term)
	matched := make([]Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Create validates and stores the draft under the given date, then
// materializes derived occurrences when the draft requests recurrence.
// Derived occurrences get id "<seedId>-<dateKey>", which keeps ids unique
// across the store as long as seed ids are.
func (s *ServiceImpl) Create(ctx context.Context, date time.Time, draft Event) (Event, error) {
	seed, err := sanitize(draft)
	if err != nil {
		return Event{}, err
	}
	if seed.ID == "" {
		seed.ID = uuid.NewString()
	}

	s.store.Append(datekey.Encode(date), seed)

	for _, occurrenceDate := range occurrenceDates(date, seed.Recurring) {
		key := datekey.Encode(occurrenceDate)
		occurrence := seed
		occurrence.ID = fmt.Sprintf("%s-%s", seed.ID, key)
		s.store.Append(key, occurrence)
	}

	log.Debugf("created event %s on %s (recurring: %s)", seed.ID, datekey.Encode(date), seed.Recurring)
	return seed, nil
}

// Update replaces the identified event within its day, preserving its
// position. A missing id is a no-op, never a fault: the update simply has
// nothing to overwrite.
func (s *ServiceImpl) Update(ctx context.Context, date time.Time, eventId string, draft Event) (Event, error) {
	updated, err := sanitize(draft)
	if err != nil {
		return Event{}, err
	}
	updated.ID = eventId

	key := datekey.Encode(date)
	if !s.store.Update(key, eventId, updated) {
		log.Debugf("update for unknown event %s on %s ignored", eventId, key)
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, date time.Time, eventId string) error {
	s.store.Remove(datekey.Encode(date), eventId)
	return nil
}

// sanitize trims and validates a draft and normalizes its enum fields.
func sanitize(draft Event) (Event, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return Event{}, ErrEmptyTitle
	}
	draft.Category = category.Normalize(draft.Category)
	draft.Recurring = NormalizeCadence(draft.Recurring)
	return draft, nil
}
