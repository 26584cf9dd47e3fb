package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/service"
)

// PhotoHandler serves POST /photo-upload.
//
// REQUEST BODY:
//
//	{"image": "<base64, optionally data:...;base64, prefixed>", "content_type": "image/png"}
//
// RESPONSE:
//
//	{"url": "https://cdn.../bucket/plants/<id>.png", "success": true}
type PhotoHandler struct {
	svc    *service.PhotoService
	logger *slog.Logger
}

func NewPhotoHandler(svc *service.PhotoService, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{svc: svc, logger: logger}
}

type uploadRequest struct {
	Image       string `json:"image"`
	ContentType string `json:"content_type"`
}

func (h *PhotoHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var req uploadRequest
	if err := decodeBody(body, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	url, err := h.svc.Upload(r.Context(), req.Image, req.ContentType)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, UploadResponse{URL: url, Success: true})
}
