package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clonestore/internal/model"
)

// SessionRepository stores issued session ids so tokens stay revocable.
type SessionRepository interface {
	Register(ctx context.Context, token string, startTime int64) error
	// Get returns nil when the session does not exist (expired or revoked).
	Get(ctx context.Context, token string) (*model.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepository creates the session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Register(ctx context.Context, token string, startTime int64) error {
	return r.db.WithContext(ctx).Create(&model.Session{Token: token, StartTime: startTime}).Error
}

func (r *sessionRepo) Get(ctx context.Context, token string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).First(&s, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
}
