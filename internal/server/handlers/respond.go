package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kuhaku/kuhaku/pkg/api"
)

// WriteJSON sends a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError sends the uniform error shape {statusCode, error, message}.
// Shared with the middleware chain so every failure path answers alike.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	resp := api.ErrorResponse{
		StatusCode: statusCode,
		Error:      http.StatusText(statusCode),
		Message:    message,
	}
	WriteJSON(w, resp, statusCode)
}
