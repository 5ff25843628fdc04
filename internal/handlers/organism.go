package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/model"
	"clonestore/internal/service"
)

// OrganismHandler serves the /organism routes.
type OrganismHandler struct {
	Service *service.OrganismService
	Logger  *zap.SugaredLogger
}

func NewOrganismHandler(s *service.OrganismService, logger *zap.SugaredLogger) *OrganismHandler {
	return &OrganismHandler{Service: s, Logger: logger}
}

type organismMsg struct {
	Type     string               `json:"type"`
	Organism *model.Microorganism `json:"microorganism"`
}

type relocateRequest struct {
	NewLocation string `json:"newLocation"`
}

func (h *OrganismHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("get microorganism", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	if m == nil {
		writeError(w, http.StatusNotFound, "Microorganism does not exist")
		return
	}
	writeJSON(w, http.StatusOK, organismMsg{Type: "microorganism", Organism: m})
}

func (h *OrganismHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m model.Microorganism
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "Microorganism JSON data is corrupt")
		return
	}
	id, err := h.Service.Create(r.Context(), &m)
	if err != nil {
		h.Logger.Errorw("create microorganism", "error", err)
		writeDomainError(w, err)
		return
	}
	writeObjectID(w, id)
}

func (h *OrganismHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Archive(r.Context(), id); err != nil {
		h.Logger.Errorw("archive microorganism", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Microorganism archived successfully")
}

func (h *OrganismHandler) Relocate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req relocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request JSON data is corrupt")
		return
	}
	if err := h.Service.Relocate(r.Context(), id, req.NewLocation); err != nil {
		h.Logger.Errorw("relocate microorganism", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Microorganism location changed successfully")
}
