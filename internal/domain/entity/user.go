package entity

import (
	"time"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// StartingBloodPoints is the balance granted to every new account.
const StartingBloodPoints int64 = 100

// User represents a registered portal account
type User struct {
	ID           uint64     // Unique identifier for the user
	Username     string     // Unique display name
	Email        string     // Unique contact address
	PasswordHash string     // bcrypt hash of the password credential
	BloodPoints  int64      // Gamification currency; unbounded in both directions
	IsAdmin      bool       // Grants access to the admin console
	IsBanned     bool       // Banned users cannot log in
	CreatedAt    time.Time  // When the account was created
	LastLogin    *time.Time // Most recent successful login, nil until first login
}

// NewUser creates a new user with the starting blood-point balance
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" || email == "" || passwordHash == "" {
		return nil, errs.ErrMissingFields
	}

	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		BloodPoints:  StartingBloodPoints,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// AdjustPoints applies a signed delta to the blood-point balance.
// The balance has no floor or ceiling.
func (u *User) AdjustPoints(delta int64) {
	u.BloodPoints += delta
}

// TouchLogin records a successful login at the given time
func (u *User) TouchLogin(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.LastLogin = &now
}
