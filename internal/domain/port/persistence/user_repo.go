package persistence

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID.
	// Returns ErrDuplicateUser when username or email is taken.
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by exact username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns all users, newest first
	List(ctx context.Context) ([]*entity.User, error)

	// SetBanned sets the banned flag. Affecting zero rows is not an error.
	SetBanned(ctx context.Context, id uint64, banned bool) error

	// SetAdmin sets the admin flag. Affecting zero rows is not an error.
	SetAdmin(ctx context.Context, id uint64, isAdmin bool) error

	// AdjustPoints atomically applies a signed delta to the blood-point
	// balance and returns the resulting balance.
	AdjustPoints(ctx context.Context, id uint64, delta int64) (int64, error)

	// TouchLastLogin records the last successful login time
	TouchLastLogin(ctx context.Context, id uint64) error
}
