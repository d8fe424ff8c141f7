package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/model"
)

// SessionRepository implements the SessionRepository port using GORM
type SessionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a freshly issued session
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionModel := model.Session{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}

	result := r.db.WithContext(ctx).Create(&sessionModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}
	return nil
}

// GetByToken retrieves a session by its opaque token
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionModel model.Session
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	return &entity.Session{
		Token:     sessionModel.Token,
		UserID:    sessionModel.UserID,
		CreatedAt: sessionModel.CreatedAt,
		ExpiresAt: sessionModel.ExpiresAt,
	}, nil
}

// Delete revokes a session by token. Affecting zero rows is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}
	return nil
}

// DeleteExpired removes sessions past their lifetime
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < NOW()").Delete(&model.Session{})
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired sessions removed", map[string]any{
			"rows": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
