package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"clonestore/internal/repo"
)

// sessionLifetime bounds how long an issued session stays valid.
const sessionLifetime = 90 * 24 * time.Hour

// AuthService issues and validates session tokens. Tokens are signed JWTs
// whose jti is recorded in the sessions table, so a token is only accepted
// while its session row is alive — deleting the row revokes it.
type AuthService struct {
	sessions        repo.SessionRepository
	secret          []byte
	accessToken     string
	accessTokenHash string
}

func NewAuthService(sessions repo.SessionRepository, secret, accessToken, accessTokenHash string) *AuthService {
	return &AuthService{
		sessions:        sessions,
		secret:          []byte(secret),
		accessToken:     accessToken,
		accessTokenHash: accessTokenHash,
	}
}

// Authenticate verifies the master access token and issues a session token.
// ok is false when the proof is rejected.
func (s *AuthService) Authenticate(ctx context.Context, proof string) (token string, ok bool, err error) {
	if !s.proofValid(proof) {
		return "", false, nil
	}

	now := time.Now()
	id := uuid.NewString()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", false, err
	}
	if err := s.sessions.Register(ctx, id, now.Unix()); err != nil {
		return "", false, err
	}
	return signed, true, nil
}

func (s *AuthService) proofValid(proof string) bool {
	if s.accessTokenHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.accessTokenHash), []byte(proof)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.accessToken), []byte(proof)) == 1
}

// Check reports whether the token is a validly signed, unexpired session
// with a live session row. Expired sessions are revoked on sight.
func (s *AuthService) Check(ctx context.Context, tokenString string) (bool, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return false, nil
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}
	if time.Since(time.Unix(sess.StartTime, 0)) > sessionLifetime {
		_ = s.sessions.Revoke(ctx, claims.ID)
		return false, nil
	}
	return true, nil
}

// Revoke deletes the session behind an issued token.
func (s *AuthService) Revoke(ctx context.Context, tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, claims.ID)
}
