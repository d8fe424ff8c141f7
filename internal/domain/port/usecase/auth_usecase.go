package usecase

import (
	"context"
)

// UserSnapshot is the public view of an account returned alongside a token
type UserSnapshot struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	BloodPoints int64  `json:"blood_points"`
}

// AuthResult carries a freshly issued session token and the account it belongs to
type AuthResult struct {
	Token string       `json:"token"`
	User  UserSnapshot `json:"user"`
}

// AuthUseCase defines authentication and self-service account operations
type AuthUseCase interface {
	// Register creates an account with the starting blood-point balance and
	// issues a session token. Duplicate username/email yields ErrDuplicateUser.
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)

	// Login verifies credentials, records the login time and issues a fresh
	// session token. Banned accounts cannot log in.
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// Logout revokes the session behind the given token
	Logout(ctx context.Context, token string) error

	// UpdatePoints applies a signed delta to the balance of the account the
	// token resolves to and returns the resulting balance.
	UpdatePoints(ctx context.Context, token string, delta int64) (int64, error)
}
