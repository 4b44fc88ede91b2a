package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/daygrid/daygrid/internal/utils"
	"github.com/daygrid/daygrid/pkg/datekey"
	"github.com/daygrid/daygrid/pkg/event"
	"github.com/daygrid/daygrid/pkg/grid"
)

// DayView is one calendar cell resolved for display: the day descriptor,
// its "today" flag, and the day's events from the store snapshot.
type DayView struct {
	Date       time.Time
	Key        datekey.Key
	DayOfMonth int
	Origin     grid.Origin
	IsToday    bool
	Events     []event.Event
}

// MonthView is the fully resolved 6x7 month grid.
type MonthView struct {
	Year  int
	Month time.Month
	Days  []DayView
}

// Service resolves grid and week windows against the event store. It only
// reads the store; all mutation goes through the event service.
type Service struct {
	events event.Service
	clock  utils.Clock
}

func NewService(events event.Service, clock utils.Clock) *Service {
	return &Service{events: events, clock: clock}
}

// MonthView returns the 42-cell view of the month containing ref.
func (s *Service) MonthView(ctx context.Context, ref time.Time) (MonthView, error) {
	now := s.clock.Now()

	days := make([]DayView, 0, grid.GridSize)
	for _, cell := range grid.MonthGrid(ref) {
		view, err := s.dayView(ctx, cell.Date, now)
		if err != nil {
			return MonthView{}, err
		}
		view.Origin = cell.Origin
		days = append(days, view)
	}

	return MonthView{Year: ref.Year(), Month: ref.Month(), Days: days}, nil
}

// WeekView returns the 7-day window containing ref, Sunday through Saturday.
func (s *Service) WeekView(ctx context.Context, ref time.Time) ([]DayView, error) {
	now := s.clock.Now()

	days := make([]DayView, 0, grid.DaysInWeek)
	for _, date := range grid.Week(ref) {
		view, err := s.dayView(ctx, date, now)
		if err != nil {
			return nil, err
		}
		days = append(days, view)
	}
	return days, nil
}

func (s *Service) dayView(ctx context.Context, date time.Time, now time.Time) (DayView, error) {
	events, err := s.events.EventsForDate(ctx, date)
	if err != nil {
		return DayView{}, fmt.Errorf("failed to resolve events for %s: %w", datekey.Encode(date), err)
	}
	return DayView{
		Date:       date,
		Key:        datekey.Encode(date),
		DayOfMonth: date.Day(),
		IsToday:    datekey.SameDay(date, now),
		Events:     events,
	}, nil
}
