package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/service"
)

// PlantHandler serves /plants.
//
//	GET  /plants            → list
//	GET  /plants?id=N       → one plant, 404 if missing
//	POST /plants            → create (action "create" or no action)
//	POST /plants            → {"action":"water","plant_id":N}
//	PUT  /plants            → {"id":N, ...fields to change}
type PlantHandler struct {
	svc    *service.PlantService
	logger *slog.Logger
}

// NewPlantHandler creates a new PlantHandler.
func NewPlantHandler(svc *service.PlantService, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{svc: svc, logger: logger}
}

// HandleGet lists plants, or returns one when ?id= is given.
func (h *PlantHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok, err := queryID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if ok {
		plant, err := h.svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, plant)
		return
	}

	plants, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, plants)
}

// HandlePost creates a plant or waters one.
func (h *PlantHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
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
		var in model.NewPlant
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

	case actionWater:
		var in struct {
			PlantID int64 `json:"plant_id"`
		}
		if err := decodeBody(body, &in); err != nil {
			writeError(w, h.logger, err)
			return
		}
		if err := h.svc.Water(r.Context(), in.PlantID); err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, SuccessResponse{Success: true})

	default:
		writeError(w, h.logger, unknownAction(req.Action))
	}
}

// HandlePut applies a partial update. The id travels in the body next to the
// fields being changed; keys outside the allow-list are ignored.
func (h *PlantHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var target struct {
		ID int64 `json:"id"`
	}
	var patch model.PlantPatch
	if err := decodeBody(body, &target, &patch); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.svc.Update(r.Context(), target.ID, patch); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, SuccessResponse{Success: true})
}
