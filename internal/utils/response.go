package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the client-visible failure shape.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// JSON writes payload as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes a JSON error body with the given status and message.
func Error(w http.ResponseWriter, status int, message string, errs ...string) {
	JSON(w, status, ErrorBody{Message: message, Errors: errs})
}
