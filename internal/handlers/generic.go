package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/model"
	"clonestore/internal/service"
)

// GenericHandler serves the /generic routes.
type GenericHandler struct {
	Service *service.GenericService
	Logger  *zap.SugaredLogger
}

func NewGenericHandler(s *service.GenericService, logger *zap.SugaredLogger) *GenericHandler {
	return &GenericHandler{Service: s, Logger: logger}
}

type genericMsg struct {
	Type   string               `json:"type"`
	Object *model.GenericObject `json:"genericobject"`
}

func (h *GenericHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("get generic object", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	if g == nil {
		writeError(w, http.StatusNotFound, "Generic Object does not exist")
		return
	}
	writeJSON(w, http.StatusOK, genericMsg{Type: "genericobject", Object: g})
}

func (h *GenericHandler) Create(w http.ResponseWriter, r *http.Request) {
	var g model.GenericObject
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, "Generic Object JSON data is corrupt")
		return
	}
	id, err := h.Service.Create(r.Context(), &g)
	if err != nil {
		h.Logger.Errorw("create generic object", "error", err)
		writeDomainError(w, err)
		return
	}
	writeObjectID(w, id)
}

func (h *GenericHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Archive(r.Context(), id); err != nil {
		h.Logger.Errorw("archive generic object", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Generic Object archived successfully")
}

func (h *GenericHandler) Relocate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req relocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request JSON data is corrupt")
		return
	}
	if err := h.Service.Relocate(r.Context(), id, req.NewLocation); err != nil {
		h.Logger.Errorw("relocate generic object", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Generic Object location changed successfully")
}
