package persistence

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// SessionRepository defines persistence operations for issued session tokens
type SessionRepository interface {
	// Create stores a freshly issued session
	Create(ctx context.Context, session *entity.Session) error

	// GetByToken retrieves a session by its opaque token.
	// Returns ErrSessionNotFound when the token matches no row.
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete revokes a session by token. Affecting zero rows is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes sessions past their lifetime and returns how
	// many rows were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
