package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/response"
	"github.com/just-nibble/folio-service/pkg/validator"
)

const maxJSONBody = 1 << 20

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errcodes.ErrNoRecordFound),
		errors.Is(err, errcodes.ErrGalleryEmpty),
		errors.Is(err, errcodes.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, errcodes.ErrInvalidCredentials),
		errors.Is(err, errcodes.ErrUnauthorized),
		errors.Is(err, errcodes.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, errcodes.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errcodes.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errcodes.ErrUploadNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, errcodes.ErrUploadFailed):
		return http.StatusBadGateway
	case errors.Is(err, errcodes.ErrContextCancelled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends err in the error envelope. Validation failures carry the
// per-field messages; internal failures hide their cause.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		response.FieldErrorResponse(w, status, "Please correct the highlighted fields", verr.Fields)
		return
	}
	if status == http.StatusInternalServerError {
		response.ErrorResponse(w, status, "Something went wrong")
		return
	}
	response.ErrorResponse(w, status, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dst); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
