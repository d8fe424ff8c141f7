package entity

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// tokenBytes is the entropy of an issued session token.
const tokenBytes = 32

// Session binds an opaque token to a user for a bounded lifetime.
// Tokens are issued on register/login and revoked on logout.
type Session struct {
	Token     string
	UserID    uint64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession issues a fresh session for the given user with the given lifetime
func NewSession(userID uint64, ttl time.Duration, timeProvider coreport.TimeProvider) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Expired reports whether the session is past its lifetime at the given instant
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// generateToken returns a cryptographically random URL-safe opaque string
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.ErrInternalServer
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
