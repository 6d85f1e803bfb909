package response

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint returns. Exactly one of
// Message and Error is set.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK sends a 200 response with a success message
func OK(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, Response{Success: true, Message: message})
}

// Error sends an error response with the given status
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Response{Success: false, Error: message})
}

// BadRequest sends a 400 response
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound sends a 404 response
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError sends a 500 response
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
