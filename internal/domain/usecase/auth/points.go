package auth

import (
	"context"
	"errors"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
)

// UpdatePoints applies a signed delta to the balance of the account the
// token resolves to. The increment is atomic at the database so concurrent
// updates never lose a delta.
func (u *AuthUseCase) UpdatePoints(ctx context.Context, token string, delta int64) (int64, error) {
	session, err := u.resolveSession(ctx, token)
	if err != nil {
		return 0, err
	}

	balance, err := u.userRepo.AdjustPoints(ctx, session.UserID, delta)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to adjust blood points", map[string]any{
				"user_id": session.UserID,
				"delta":   delta,
				"error":   err.Error(),
			})
		}
		return 0, err
	}

	u.logger.Info("Blood points updated", map[string]any{
		"user_id":     session.UserID,
		"delta":       delta,
		"new_balance": balance,
	})

	return balance, nil
}
