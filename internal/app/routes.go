package app

import (
	"github.com/daygrid/daygrid/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar views
	r.HandleFunc("/api/calendar/grid", deps.CalendarHandler.GetGrid).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/calendar/week", deps.CalendarHandler.GetWeek).Queries("date", "{date}").Methods("GET")

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.GetEvents).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Queries("date", "{date}").Methods("POST")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Queries("date", "{date}").Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Queries("date", "{date}").Methods("DELETE")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.ListCategories).Methods("GET")
}
