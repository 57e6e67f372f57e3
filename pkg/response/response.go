package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// SuccessResponse writes data wrapped in the success envelope.
func SuccessResponse(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Status: "success", Data: data})
}

// ErrorResponse writes a message wrapped in the error envelope.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: "error", Message: message})
}

// FieldErrorResponse is ErrorResponse with a per-field error map, used for
// validation failures.
func FieldErrorResponse(w http.ResponseWriter, status int, message string, fields map[string]string) {
	writeJSON(w, status, envelope{Status: "error", Message: message, Errors: fields})
}

// RedirectResponse tells the client where to go next, e.g. the login page.
func RedirectResponse(w http.ResponseWriter, status int, message, location string) {
	writeJSON(w, status, envelope{
		Status:  "error",
		Message: message,
		Data:    map[string]string{"redirect": location},
	})
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ErrorDataResponse is ErrorResponse with a payload, used when a failed
// action still returns the current state of the collection.
func ErrorDataResponse(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Status: "error", Message: message, Data: data})
}
