package calendar

import (
	"encoding/json"
	"net/http"

	"github.com/daygrid/daygrid/internal/rest"
	"github.com/daygrid/daygrid/pkg/event"
	log "github.com/sirupsen/logrus"
)

var weekDayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type DayDTO struct {
	Date       string           `json:"date"`
	DayOfMonth int              `json:"dayOfMonth"`
	Origin     string           `json:"origin,omitempty"`
	IsToday    bool             `json:"isToday"`
	Events     []event.EventDTO `json:"events"`
}

type MonthViewDTO struct {
	Year     int      `json:"year"`
	Month    string   `json:"month"`
	WeekDays []string `json:"weekDays"`
	Days     []DayDTO `json:"days"`
}

type Handler struct {
	calendar *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Resolving month grid")

	ref, err := rest.ParseDateParam(r, "date")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	view, err := h.calendar.MonthView(r.Context(), ref)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := MonthViewDTO{
		Year:     view.Year,
		Month:    view.Month.String(),
		WeekDays: weekDayLabels,
		Days:     make([]DayDTO, 0, len(view.Days)),
	}
	for _, day := range view.Days {
		dto.Days = append(dto.Days, dayToDTO(day))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Resolving week window")

	ref, err := rest.ParseDateParam(r, "date")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	days, err := h.calendar.WeekView(r.Context(), ref)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DayDTO, 0, len(days))
	for _, day := range days {
		dtos = append(dtos, dayToDTO(day))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func dayToDTO(day DayView) DayDTO {
	events := make([]event.EventDTO, 0, len(day.Events))
	for _, e := range day.Events {
		events = append(events, event.EventToDTO(e))
	}
	return DayDTO{
		Date:       day.Key.String(),
		DayOfMonth: day.DayOfMonth,
		Origin:     string(day.Origin),
		IsToday:    day.IsToday,
		Events:     events,
	}
}
