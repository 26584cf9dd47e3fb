package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/service"
)

// JournalHandler serves /journal: GET lists, POST appends.
type JournalHandler struct {
	svc    *service.JournalService
	logger *slog.Logger
}

func NewJournalHandler(svc *service.JournalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, logger: logger}
}

func (h *JournalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, entries)
}

func (h *JournalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var in model.NewJournalEntry
	if err := decodeBody(body, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	id, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, CreatedResponse{ID: id, Success: true})
}
