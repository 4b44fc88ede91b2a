package rest

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorResponse is the JSON body returned for client errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ParseDateParam reads a YYYY-MM-DD query parameter as a local calendar date.
func ParseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s parameter %q: %w", name, raw, err)
	}
	return date, nil
}
