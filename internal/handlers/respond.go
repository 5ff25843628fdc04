package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clonestore/internal/model"
	"clonestore/internal/printremote"
	"clonestore/internal/service"
)

type statusMsg struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

type objectIDMsg struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, details string) {
	writeJSON(w, status, statusMsg{Type: "error", Details: details})
}

func writeSuccess(w http.ResponseWriter, details string) {
	writeJSON(w, http.StatusOK, statusMsg{Type: "success", Details: details})
}

func writeObjectID(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusOK, objectIDMsg{Type: "objectID", ID: id})
}

// writeDomainError maps the error taxonomy onto response codes: validation
// 400, absence 404, constraint conflicts 409, unreachable printer 502,
// anything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Reason)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrDuplicateID),
		errors.Is(err, model.ErrSlotOccupied),
		errors.Is(err, model.ErrDanglingRef):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, printremote.ErrUnreachable):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrNoPrinter):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
