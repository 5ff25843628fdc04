package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/model"
	"clonestore/internal/service"
)

// SearchHandler serves the /search routes.
type SearchHandler struct {
	Service *service.SearchService
	Logger  *zap.SugaredLogger
}

func NewSearchHandler(s *service.SearchService, logger *zap.SugaredLogger) *SearchHandler {
	return &SearchHandler{Service: s, Logger: logger}
}

type searchResultMsg struct {
	Type    string               `json:"type"`
	Results []model.SearchResult `json:"results"`
}

func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	term := r.URL.Query().Get("query")
	results, err := h.Service.Query(r.Context(), mode, term)
	if err != nil {
		h.Logger.Errorw("search", "mode", mode, "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResultMsg{Type: "searchResultList", Results: results})
}
