package admin

import (
	"context"
	"errors"
	"strconv"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
)

// Action type tags written to the audit trail
const (
	actionBanUser        = "ban_user"
	actionUnbanUser      = "unban_user"
	actionSetAdmin       = "set_admin"
	actionAddBloodPoints = "add_blood_points"
)

// ListUsers returns all accounts, newest first
func (u *AdminUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}

// BanUser sets the banned flag for the target account. Naming an absent
// account affects zero rows and still succeeds.
func (u *AdminUseCase) BanUser(ctx context.Context, adminID, userID uint64) error {
	if err := u.userRepo.SetBanned(ctx, userID, true); err != nil {
		return err
	}

	action := entity.NewAdminAction(adminID, actionBanUser, u.timeProvider).WithTarget(userID)
	return u.recordAction(ctx, action)
}

// UnbanUser clears the banned flag for the target account
func (u *AdminUseCase) UnbanUser(ctx context.Context, adminID, userID uint64) error {
	if err := u.userRepo.SetBanned(ctx, userID, false); err != nil {
		return err
	}

	action := entity.NewAdminAction(adminID, actionUnbanUser, u.timeProvider).WithTarget(userID)
	return u.recordAction(ctx, action)
}

// SetAdmin sets the admin flag to the given value for the target account
func (u *AdminUseCase) SetAdmin(ctx context.Context, adminID, userID uint64, isAdmin bool) error {
	if err := u.userRepo.SetAdmin(ctx, userID, isAdmin); err != nil {
		return err
	}

	action := entity.NewAdminAction(adminID, actionSetAdmin, u.timeProvider).
		WithTarget(userID).
		WithDetails(strconv.FormatBool(isAdmin))
	return u.recordAction(ctx, action)
}

// AddBloodPoints applies a signed delta to the target's balance. The delta
// may be negative and the balance has no floor.
func (u *AdminUseCase) AddBloodPoints(ctx context.Context, adminID, userID uint64, points int64) error {
	if _, err := u.userRepo.AdjustPoints(ctx, userID, points); err != nil {
		// Zero affected rows is permissive behavior, not a failure
		if !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
	}

	action := entity.NewAdminAction(adminID, actionAddBloodPoints, u.timeProvider).
		WithTarget(userID).
		WithDetails(strconv.FormatInt(points, 10))
	return u.recordAction(ctx, action)
}
