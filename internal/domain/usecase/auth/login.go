package auth

import (
	"context"
	"errors"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
)

// Login verifies credentials, records the login time and issues a fresh
// session token. A wrong username and a wrong password are indistinguishable
// to the caller.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	if username == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		u.logger.Error("Failed to look up user for login", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	if !checkPassword(user.PasswordHash, password) {
		u.logger.Warn("Login rejected, bad password", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if user.IsBanned {
		u.logger.Warn("Login rejected, account banned", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrUserBanned
	}

	if err := u.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		u.logger.Error("Failed to record login time", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	session, err := u.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &usecase.AuthResult{
		Token: session.Token,
		User:  snapshot(user),
	}, nil
}

// Logout revokes the session behind the given token
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrUnauthorized
	}

	if err := u.sessionRepo.Delete(ctx, token); err != nil {
		u.logger.Error("Failed to revoke session", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
