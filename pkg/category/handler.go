package category

import (
	"encoding/json"
	"net/http"
)

type CategoryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListCategories returns the static category descriptors for the
// presentation layer.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dtos := make([]CategoryDTO, 0, len(All()))
	for _, c := range All() {
		d, _ := DescriptorOf(c)
		dtos = append(dtos, CategoryDTO{ID: string(c), Name: d.Name, Color: d.Color})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
