package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/model"
	"clonestore/internal/service"
)

// PrintHandler serves printer setup, status and label printing.
type PrintHandler struct {
	Service   *service.PrintService
	Plasmids  *service.PlasmidService
	Organisms *service.OrganismService
	Generics  *service.GenericService
	Logger    *zap.SugaredLogger
}

func NewPrintHandler(
	s *service.PrintService,
	plasmids *service.PlasmidService,
	organisms *service.OrganismService,
	generics *service.GenericService,
	logger *zap.SugaredLogger,
) *PrintHandler {
	return &PrintHandler{Service: s, Plasmids: plasmids, Organisms: organisms, Generics: generics, Logger: logger}
}

type printerStatusMsg struct {
	Type   string `json:"type"`
	Online bool   `json:"online"`
}

type printerSetupRequest struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Location string `json:"location"`
	AuthKey  string `json:"authKey"`
}

func (h *PrintHandler) Status(w http.ResponseWriter, r *http.Request) {
	online, err := h.Service.Status(r.Context())
	if err != nil {
		h.Logger.Errorw("printer status", "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, printerStatusMsg{Type: "printerStatus", Online: online})
}

func (h *PrintHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req printerSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request JSON data is corrupt")
		return
	}
	if err := h.Service.Setup(r.Context(), req.URL, req.Name, req.Location, req.AuthKey); err != nil {
		h.Logger.Errorw("printer setup", "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Printer setup successfully")
}

// PrintLabel prints the label of the entity named by type tag and id. The
// entity must exist before anything is sent to the printer; a remote failure
// afterwards leaves inventory state untouched.
func (h *PrintHandler) PrintLabel(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	id := chi.URLParam(r, "id")

	entity, err := h.lookup(r, tag, id)
	if err != nil {
		h.Logger.Errorw("print lookup", "tag", tag, "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	if entity == nil {
		writeError(w, http.StatusNotFound, "No object with given ID")
		return
	}

	copies := 1
	if v := r.URL.Query().Get("copies"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			copies = n
		}
	}
	host := r.URL.Query().Get("host")

	if err := h.Service.PrintLabel(r.Context(), entity, copies, host); err != nil {
		h.Logger.Errorw("print label", "tag", tag, "id", id, "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Printing completed")
}

func (h *PrintHandler) lookup(r *http.Request, tag, id string) (model.Entity, error) {
	switch tag {
	case model.TagPlasmid:
		p, err := h.Plasmids.Get(r.Context(), id)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case model.TagMicroorganism:
		m, err := h.Organisms.Get(r.Context(), id)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	case model.TagGeneric:
		g, err := h.Generics.Get(r.Context(), id)
		if err != nil || g == nil {
			return nil, err
		}
		return g, nil
	}
	return nil, &model.ValidationError{Reason: "unknown object type"}
}
