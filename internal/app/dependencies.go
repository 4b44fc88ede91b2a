package app

import (
	"github.com/daygrid/daygrid/internal/utils"
	"github.com/daygrid/daygrid/pkg/calendar"
	"github.com/daygrid/daygrid/pkg/category"
	"github.com/daygrid/daygrid/pkg/event"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventStore   event.Store
	EventService event.Service
	EventHandler *event.Handler

	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	CategoryHandler *category.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and
// handlers. The event store lives for the lifetime of the process; nothing
// is persisted beyond it.
func BuildDependencies() *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.EventStore = event.NewMemoryStore()
	deps.EventService = event.NewService(deps.EventStore)
	deps.EventHandler = event.NewHandler(deps.EventService)

	deps.CalendarService = calendar.NewService(deps.EventService, deps.Clock)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService)

	deps.CategoryHandler = category.NewHandler()

	return deps
}
