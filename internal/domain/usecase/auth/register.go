package auth

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
)

// Register creates an account with the starting blood-point balance and
// issues a session token
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*usecase.AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			u.logger.Warn("Registration rejected, username or email taken", map[string]any{
				"username": username,
			})
		} else {
			u.logger.Error("Failed to create user", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	session, err := u.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &usecase.AuthResult{
		Token: session.Token,
		User:  snapshot(user),
	}, nil
}
