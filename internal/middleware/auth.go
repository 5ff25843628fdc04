package middleware

import (
	"context"
	"net/http"
	"strings"
)

// SessionChecker validates a session token. Implemented by the auth service.
type SessionChecker interface {
	Check(ctx context.Context, token string) (bool, error)
}

type sessionKeyType struct{}

var sessionKey sessionKeyType

// WithAuth rejects requests that do not carry a valid session token in the
// Authorization header (Bearer scheme) or the auth_token cookie.
func WithAuth(checker SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				reject(w)
				return
			}
			ok, err := checker.Check(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"type":"error","details":"Session lookup failed"}`))
				return
			}
			if !ok {
				reject(w)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext returns the validated session token, if any.
func GetSessionFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionKey).(string)
	return token, ok
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie("auth_token"); err == nil {
		return c.Value
	}
	return ""
}

func reject(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"type":"error","details":"Not authenticated"}`))
}
