package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/daygrid/daygrid/internal/rest"
	"github.com/daygrid/daygrid/pkg/category"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsAllDay    bool   `json:"isAllDay"`
	Category    string `json:"category"`
	Recurring   string `json:"recurring"`
}

type Handler struct {
	eventService Service
}

func NewHandler(eventService Service) *Handler {
	return &Handler{eventService}
}

// dateParam parses the mandatory date query parameter. On failure it writes
// the 400 response itself and reports ok=false.
func dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := rest.ParseDateParam(r, "date")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	term := r.URL.Query().Get("search")
	events, err := h.eventService.SearchForDate(r.Context(), date, term)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, EventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new event")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var draft EventDTO
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.eventService.Create(r.Context(), date, dtoToEvent(draft))
	if err != nil {
		if errors.Is(err, ErrEmptyTitle) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Event title is required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(EventToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Updating event")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	eventId := mux.Vars(r)["eventId"]

	var draft EventDTO
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	updated, err := h.eventService.Update(r.Context(), date, eventId, dtoToEvent(draft))
	if err != nil {
		if errors.Is(err, ErrEmptyTitle) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Event title is required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(EventToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Deleting event")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	eventId := mux.Vars(r)["eventId"]

	if err := h.eventService.Delete(r.Context(), date, eventId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func EventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		IsAllDay:    e.IsAllDay,
		Category:    string(e.Category),
		Recurring:   string(e.Recurring),
	}
}

func dtoToEvent(dto EventDTO) Event {
	return Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		IsAllDay:    dto.IsAllDay,
		Category:    category.Category(dto.Category),
		Recurring:   Cadence(dto.Recurring),
	}
}
