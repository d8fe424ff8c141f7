package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing fields", ErrMissingFields, CodeMissingFields},
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"unknown action", ErrUnknownAction, CodeUnknownAction},
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"session not found maps to unauthorized", ErrSessionNotFound, CodeUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"banned user maps to invalid credentials", ErrUserBanned, CodeInvalidCredentials},
		{"session expired", ErrSessionExpired, CodeSessionExpired},
		{"access denied", ErrAccessDenied, CodeAccessDenied},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"duplicate user", ErrDuplicateUser, CodeDuplicateUser},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing fields", ErrMissingFields, http.StatusBadRequest},
		{"invalid request", ErrInvalidRequest, http.StatusBadRequest},
		{"unknown action", ErrUnknownAction, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"banned user", ErrUserBanned, http.StatusUnauthorized},
		{"session expired", ErrSessionExpired, http.StatusUnauthorized},
		{"access denied", ErrAccessDenied, http.StatusForbidden},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"duplicate user", ErrDuplicateUser, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}

func TestMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"missing fields", ErrMissingFields, "Missing required fields"},
		{"unknown action", ErrUnknownAction, "Unknown action"},
		{"unauthorized", ErrUnauthorized, "Unauthorized"},
		{"session expired", ErrSessionExpired, "Unauthorized"},
		{"invalid credentials", ErrInvalidCredentials, "Invalid credentials"},
		{"banned user", ErrUserBanned, "Invalid credentials"},
		{"access denied", ErrAccessDenied, "Access denied"},
		{"duplicate user", ErrDuplicateUser, "Username or email already exists"},
		{"invalid request", ErrInvalidRequest, "Invalid request"},
		{"unknown error", errors.New("boom"), "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Message(tc.err))
		})
	}

	t.Run("wrapped errors keep their message", func(t *testing.T) {
		wrapped := fmt.Errorf("repository: %w", ErrDuplicateUser)
		assert.Equal(t, "Username or email already exists", Message(wrapped))
		assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))
	})
}

func TestAuditError(t *testing.T) {
	underlying := errors.New("insert failed")
	auditErr := &AuditError{
		AdminID:    7,
		ActionType: "ban_user",
		Err:        underlying,
	}

	assert.Contains(t, auditErr.Error(), "ban_user")
	assert.Contains(t, auditErr.Error(), "insert failed")
	assert.ErrorIs(t, auditErr, underlying)

	fields := auditErr.LogFields()
	require.Equal(t, "audit_error", fields["error_type"])
	assert.Equal(t, uint64(7), fields["admin_id"])
	assert.Equal(t, "ban_user", fields["action_type"])
}

func TestErrorPredicates(t *testing.T) {
	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrTrackNotFound))
		assert.True(t, IsNotFoundError(ErrSessionNotFound))
		assert.False(t, IsNotFoundError(ErrDuplicateUser))
	})

	t.Run("IsAuthError", func(t *testing.T) {
		assert.True(t, IsAuthError(ErrUnauthorized))
		assert.True(t, IsAuthError(ErrAccessDenied))
		assert.True(t, IsAuthError(ErrSessionExpired))
		assert.False(t, IsAuthError(ErrMissingFields))
	})
}
