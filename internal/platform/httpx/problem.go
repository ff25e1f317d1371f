// Package httpx writes JSON and RFC7807 problem responses for the API.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Sentinels the API maps onto 4xx problems. Wrap them with %w.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// ProblemDetail is an RFC7807 body.
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// JSON encodes data with status. API payloads are never cached.
func JSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, "application/json", status, data)
}

// RespondError writes the problem for err. Unknown errors become a bare 500
// so internal details never reach the client.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	p := ProblemDetail{Type: "about:blank"}
	switch {
	case errors.Is(err, ErrNotFound):
		p.Status, p.Title, p.Detail = http.StatusNotFound, "Not Found", err.Error()
	case errors.Is(err, ErrValidation):
		p.Status, p.Title, p.Detail = http.StatusBadRequest, "Validation Failed", err.Error()
	default:
		p.Status, p.Title = http.StatusInternalServerError, "Internal Error"
	}
	if r != nil {
		p.Instance = r.URL.Path
	}
	writeJSON(w, "application/problem+json", p.Status, p)
}

func writeJSON(w http.ResponseWriter, contentType string, status int, data any) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
