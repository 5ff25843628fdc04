package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/model"
	"clonestore/internal/service"
)

// PlasmidHandler serves the /plasmid routes.
type PlasmidHandler struct {
	Service *service.PlasmidService
	Logger  *zap.SugaredLogger
}

func NewPlasmidHandler(s *service.PlasmidService, logger *zap.SugaredLogger) *PlasmidHandler {
	return &PlasmidHandler{Service: s, Logger: logger}
}

type plasmidMsg struct {
	Type    string         `json:"type"`
	Plasmid *model.Plasmid `json:"plasmid"`
}

func (h *PlasmidHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("get plasmid", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Plasmid does not exist")
		return
	}
	writeJSON(w, http.StatusOK, plasmidMsg{Type: "plasmid", Plasmid: p})
}

func (h *PlasmidHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Plasmid
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Plasmid JSON data is corrupt")
		return
	}
	id, err := h.Service.Create(r.Context(), &p)
	if err != nil {
		h.Logger.Errorw("create plasmid", "error", err)
		writeDomainError(w, err)
		return
	}
	writeObjectID(w, id)
}

func (h *PlasmidHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Archive(r.Context(), id); err != nil {
		h.Logger.Errorw("archive plasmid", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Plasmid archived successfully")
}
