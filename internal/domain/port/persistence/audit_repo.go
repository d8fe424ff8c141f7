package persistence

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// AdminActionRepository appends and reads the append-only audit trail
type AdminActionRepository interface {
	// Append inserts a new audit record. Records are never updated or deleted.
	Append(ctx context.Context, action *entity.AdminAction) error

	// ListLatest returns at most limit records joined with the actor's
	// username, newest first.
	ListLatest(ctx context.Context, limit int) ([]*entity.AdminAction, error)
}
