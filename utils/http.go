package utils

import (
	"encoding/json"
	"net/http"
)

// ProblemContentType is the media type for RFC 7807 responses
const ProblemContentType = "application/problem+json"

// ProblemDetail is an RFC 7807 problem details object
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewProblem builds a problem for status with the RFC defaults filled in:
// type "about:blank" and the standard status text as title.
func NewProblem(status int, detail, instance string) ProblemDetail {
	return ProblemDetail{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteProblem writes p with the problem+json content type
func WriteProblem(w http.ResponseWriter, p ProblemDetail) error {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)
	return json.NewEncoder(w).Encode(p)
}
