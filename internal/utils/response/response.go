// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Error responses always share one envelope so API consumers know what
// they look like:
//
//	{ "status": "error", "error": "..." }
package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is the standard envelope returned for error cases.
// Errors is only set for validation failures and lists every message.
type Response struct {
	Status string   `json:"status"`
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns the form's validation messages into a Response.
// The messages are also joined with ", " into Error for clients that
// only read one string.
//
// Example output:
//
//	{
//	  "status": "error",
//	  "error": "Feet must be a number greater than 0., Weight must be a number greater than 0.",
//	  "errors": ["Feet must be a number greater than 0.", "Weight must be a number greater than 0."]
//	}
func ValidationError(messages []string) Response {
	return Response{
		Status: StatusError,
		Error:  strings.Join(messages, ", "),
		Errors: messages,
	}
}
