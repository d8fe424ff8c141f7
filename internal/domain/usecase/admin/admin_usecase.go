package admin

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/persistence"
)

// adminLogLimit caps how many audit records a single read returns.
const adminLogLimit = 100

// AdminUseCase implements the administrative console operations
type AdminUseCase struct {
	userRepo     persistence.UserRepository
	trackRepo    persistence.MusicTrackRepository
	partnerRepo  persistence.PartnerRepository
	auditRepo    persistence.AdminActionRepository
	sessionRepo  persistence.SessionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(
	userRepo persistence.UserRepository,
	trackRepo persistence.MusicTrackRepository,
	partnerRepo persistence.PartnerRepository,
	auditRepo persistence.AdminActionRepository,
	sessionRepo persistence.SessionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		trackRepo:    trackRepo,
		partnerRepo:  partnerRepo,
		auditRepo:    auditRepo,
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Authorize resolves the session token to a user and requires the admin flag
func (u *AdminUseCase) Authorize(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := u.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	if session.Expired(u.timeProvider.Now()) {
		return nil, errs.ErrSessionExpired
	}

	user, err := u.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrAccessDenied
		}
		return nil, err
	}

	if !user.IsAdmin {
		u.logger.Warn("Admin access denied", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrAccessDenied
	}

	return user, nil
}

// recordAction appends the audit record for a privileged mutation that
// already committed. The record itself failing is surfaced as an AuditError.
func (u *AdminUseCase) recordAction(ctx context.Context, action *entity.AdminAction) error {
	if err := u.auditRepo.Append(ctx, action); err != nil {
		auditErr := &errs.AuditError{
			AdminID:    action.AdminID,
			ActionType: action.ActionType,
			Err:        err,
		}
		u.logger.Error("Failed to append audit record", auditErr.LogFields())
		return auditErr
	}

	u.logger.Info("Admin action recorded", map[string]any{
		"admin_id":    action.AdminID,
		"action_type": action.ActionType,
		"target_id":   action.TargetID,
	})
	return nil
}

// ListAdminLogs returns the latest audit records joined with the actor's
// username, newest first
func (u *AdminUseCase) ListAdminLogs(ctx context.Context) ([]*entity.AdminAction, error) {
	return u.auditRepo.ListLatest(ctx, adminLogLimit)
}
