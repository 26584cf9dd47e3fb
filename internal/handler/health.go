package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sakif/plant-care/internal/apperror"
)

// pingTimeout bounds the store check so a hung database fails the probe
// instead of hanging it.
const pingTimeout = 2 * time.Second

// Pinger is anything that can report whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		writeError(w, h.logger, apperror.Unavailable("Store unreachable"))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
