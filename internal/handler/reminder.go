package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/service"
)

// ReminderHandler serves /reminders.
//
//	GET  /reminders → active reminders
//	POST /reminders → create, or {"action":"complete","reminder_id":N}
type ReminderHandler struct {
	svc    *service.ReminderService
	logger *slog.Logger
}

func NewReminderHandler(svc *service.ReminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, logger: logger}
}

func (h *ReminderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.ListActive(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, reminders)
}

func (h *ReminderHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var req actionRequest
	if err := decodeBody(body, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	switch req.Action {
	case "", actionCreate:
		var in model.NewReminder
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

	case actionComplete:
		var in struct {
			ReminderID int64 `json:"reminder_id"`
		}
		if err := decodeBody(body, &in); err != nil {
			writeError(w, h.logger, err)
			return
		}
		if err := h.svc.Complete(r.Context(), in.ReminderID); err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, SuccessResponse{Success: true})

	default:
		writeError(w, h.logger, unknownAction(req.Action))
	}
}
