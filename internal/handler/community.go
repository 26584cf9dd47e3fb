package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/service"
)

// CommunityHandler serves /community.
//
//	GET  /community → feed
//	POST /community → create, or {"action":"like","post_id":N}
type CommunityHandler struct {
	svc    *service.CommunityService
	logger *slog.Logger
}

func NewCommunityHandler(svc *service.CommunityService, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{svc: svc, logger: logger}
}

func (h *CommunityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, posts)
}

func (h *CommunityHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
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
		var in model.NewPost
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

	case actionLike:
		var in struct {
			PostID int64 `json:"post_id"`
		}
		if err := decodeBody(body, &in); err != nil {
			writeError(w, h.logger, err)
			return
		}
		if err := h.svc.Like(r.Context(), in.PostID); err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, SuccessResponse{Success: true})

	default:
		writeError(w, h.logger, unknownAction(req.Action))
	}
}
