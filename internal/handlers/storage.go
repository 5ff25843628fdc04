package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/service"
)

// StorageHandler serves the slot registry routes.
type StorageHandler struct {
	Service *service.StorageService
	Logger  *zap.SugaredLogger
}

func NewStorageHandler(s *service.StorageService, logger *zap.SugaredLogger) *StorageHandler {
	return &StorageHandler{Service: s, Logger: logger}
}

type occupyRequest struct {
	Entry string `json:"entry"`
	Host  string `json:"host"`
}

type slotContentMsg struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Host string `json:"host"`
}

type locationEntry struct {
	Location string `json:"location"`
	Host     string `json:"host"`
}

type locationListMsg struct {
	Type      string          `json:"type"`
	Locations []locationEntry `json:"locations"`
}

func (h *StorageHandler) Occupy(w http.ResponseWriter, r *http.Request) {
	loc := chi.URLParam(r, "loc")
	var req occupyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request JSON data is corrupt")
		return
	}
	if err := h.Service.Occupy(r.Context(), loc, req.Entry, req.Host); err != nil {
		h.Logger.Errorw("occupy storage slot", "location", loc, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Storage location set successfully")
}

func (h *StorageHandler) Vacate(w http.ResponseWriter, r *http.Request) {
	loc := chi.URLParam(r, "loc")
	if err := h.Service.Vacate(r.Context(), loc); err != nil {
		h.Logger.Errorw("vacate storage slot", "location", loc, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Storage slot cleared")
}

func (h *StorageHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	loc := chi.URLParam(r, "loc")
	slot, err := h.Service.Lookup(r.Context(), loc)
	if err != nil {
		h.Logger.Errorw("lookup storage slot", "location", loc, "error", err)
		writeDomainError(w, err)
		return
	}
	if slot == nil {
		writeError(w, http.StatusNotFound, "Storage location is empty")
		return
	}
	writeJSON(w, http.StatusOK, slotContentMsg{Type: "storageLocationContent", ID: slot.PlasmidID, Host: slot.Host})
}

func (h *StorageHandler) LocationsFor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	slots, err := h.Service.LocationsFor(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("list storage slots", "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	msg := locationListMsg{Type: "storageLocationList", Locations: make([]locationEntry, 0, len(slots))}
	for _, s := range slots {
		msg.Locations = append(msg.Locations, locationEntry{Location: s.Location, Host: s.Host})
	}
	writeJSON(w, http.StatusOK, msg)
}
