package handlers

import (
	"context"
	"net/http"

	"github.com/just-nibble/folio-service/pkg/response"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	response.SuccessResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
