package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/persistence"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
)

// DefaultSessionTTL is used when no session lifetime is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// AuthUseCase handles registration, login and self-service point updates
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	sessionRepo  persistence.SessionRepository
	sessionTTL   time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	sessionRepo persistence.SessionRepository,
	sessionTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		sessionTTL:   sessionTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// hashPassword derives a salted bcrypt hash from the plaintext credential
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword verifies a plaintext credential against a stored hash
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// issueSession creates and persists a fresh session token for the user
func (u *AuthUseCase) issueSession(ctx context.Context, userID uint64) (*entity.Session, error) {
	session, err := entity.NewSession(userID, u.sessionTTL, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.sessionRepo.Create(ctx, session); err != nil {
		u.logger.Error("Failed to persist session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return session, nil
}

// resolveSession returns the live session behind a token.
// Expired sessions are revoked on sight.
func (u *AuthUseCase) resolveSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := u.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(u.timeProvider.Now()) {
		if err := u.sessionRepo.Delete(ctx, token); err != nil {
			u.logger.Warn("Failed to delete expired session", map[string]any{
				"user_id": session.UserID,
				"error":   err.Error(),
			})
		}
		return nil, errs.ErrSessionExpired
	}

	return session, nil
}

// snapshot builds the public view of an account
func snapshot(user *entity.User) usecase.UserSnapshot {
	return usecase.UserSnapshot{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		BloodPoints: user.BloodPoints,
	}
}
