package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
//   writeJSON(w, logger, http.StatusOK, data)
//   writeError(w, logger, err)
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//   {"error": "plant not found with id 7"}
//
// The frontend shows the message as-is, so it must never contain SQL, file
// paths or driver output. Only *apperror.AppError messages reach the client;
// everything else becomes "Internal server error".

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/apperror"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the error format returned by all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges an update or an action.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreatedResponse carries the id of a newly created row.
type CreatedResponse struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

// UploadResponse carries the public URL of an uploaded photo.
type UploadResponse struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
}

// writeJSON sends a JSON response with the given status code.
//
// ENCODE FIRST, THEN WRITE:
// Headers and status go out with the first byte of the body. If we streamed
// straight into w and encoding failed halfway (a value encoding/json cannot
// represent), the client would already have a 200 and half a body. Encoding
// into a buffer first means a failure can still turn into a clean 500.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.String("error", err.Error()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + internalErrorMessage + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// The client went away; nothing left to tell it.
		logger.Debug("failed to write response", slog.String("error", err.Error()))
	}
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// ERROR MAPPING:
//
//	apperror.ErrValidation       → 400
//	apperror.ErrNotFound         → 404
//	apperror.ErrMethodNotAllowed → 405
//	apperror.ErrUnavailable      → 503
//	anything else                → 500, logged, generic message
//
// errors.As walks the wrap chain, so a service returning
// fmt.Errorf("creating plant: %w", appErr) still maps correctly.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		// Store failures (connection refused, foreign key violation...) and bugs.
		logger.Error("request failed", slog.String("error", err.Error()))
		writeJSON(w, logger, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	case errors.Is(err, apperror.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, logger, status, ErrorResponse{Error: appErr.Message})
}

// MethodNotAllowed answers a verb the resource does not serve.
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, apperror.MethodNotAllowed())
	}
}

// NotFound answers a path no resource lives at.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}
}
