package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"clonestore/internal/middleware"
	"clonestore/internal/service"
)

// AuthHandler serves session issuance.
type AuthHandler struct {
	Service *service.AuthService
	Logger  *zap.SugaredLogger
}

func NewAuthHandler(s *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Service: s, Logger: logger}
}

type authRequest struct {
	Token string `json:"token"`
}

type sessionTokenMsg struct {
	Type         string `json:"type"`
	SessionToken string `json:"sessionToken"`
}

func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "No authentication token given")
		return
	}
	token, ok, err := h.Service.Authenticate(r.Context(), req.Token)
	if err != nil {
		h.Logger.Errorw("authenticate", "error", err)
		writeDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusForbidden, "Authentication failed - invalid token")
		return
	}
	writeJSON(w, http.StatusOK, sessionTokenMsg{Type: "sessionToken", SessionToken: token})
}

// Logout revokes the session the request was authenticated with.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "Not authenticated")
		return
	}
	if err := h.Service.Revoke(r.Context(), token); err != nil {
		h.Logger.Errorw("logout", "error", err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, "Session revoked")
}
