package migration

import (
	"context"
	"errors"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/persistence"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
)

// SeedDefaultAdmin ensures a working administrator account exists on a fresh
// deployment. An empty password skips seeding entirely; an already-registered
// username promotes that account instead of creating a duplicate.
func SeedDefaultAdmin(
	ctx context.Context,
	authUseCase usecase.AuthUseCase,
	userRepo persistence.UserRepository,
	username, email, password string,
	logger coreport.Logger,
) error {
	if password == "" {
		logger.Warn("No default admin password configured, skipping admin seed", nil)
		return nil
	}

	existing, err := userRepo.GetByUsername(ctx, username)
	if err == nil {
		if !existing.IsAdmin {
			if err := userRepo.SetAdmin(ctx, existing.ID, true); err != nil {
				return err
			}
			logger.Info("Promoted existing account to admin", map[string]any{
				"user_id": existing.ID,
			})
		}
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	result, err := authUseCase.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	if err := userRepo.SetAdmin(ctx, result.User.ID, true); err != nil {
		return err
	}

	logger.Info("Seeded default admin account", map[string]any{
		"user_id":  result.User.ID,
		"username": username,
	})
	return nil
}
