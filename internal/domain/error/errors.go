package error

import (
	"errors"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingFields      = 4001
	CodeInvalidRequest     = 4002
	CodeUnknownAction      = 4003
	CodeUnauthorized       = 4010
	CodeInvalidCredentials = 4011
	CodeSessionExpired     = 4012
	CodeAccessDenied       = 4030
	CodeUserNotFound       = 4040
	CodeTrackNotFound      = 4041
	CodePartnerNotFound    = 4042
	CodeDuplicateUser      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingFields is returned when a required request field is absent or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidRequest is returned when the request body cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownAction is returned when the action field names no supported action
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnauthorized is returned when no usable identity accompanies the request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned when username/password verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when a presented token is past its lifetime
	ErrSessionExpired = errors.New("session expired")

	// ErrAccessDenied is returned when the caller lacks the admin flag
	ErrAccessDenied = errors.New("access denied")

	// ErrUserBanned is returned when a banned account attempts to log in
	ErrUserBanned = errors.New("user is banned")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTrackNotFound is returned when the requested music track doesn't exist
	ErrTrackNotFound = errors.New("music track not found")

	// ErrPartnerNotFound is returned when the requested partner doesn't exist
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrSessionNotFound is returned when a presented token matches no session
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateUser is returned when username or email already exists
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnknownAction):
		return CodeUnknownAction
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserBanned):
		return CodeInvalidCredentials
	case errors.Is(err, ErrSessionExpired):
		return CodeSessionExpired
	case errors.Is(err, ErrAccessDenied):
		return CodeAccessDenied
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTrackNotFound):
		return CodeTrackNotFound
	case errors.Is(err, ErrPartnerNotFound):
		return CodePartnerNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps domain errors to HTTP status codes
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserBanned),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTrackNotFound),
		errors.Is(err, ErrPartnerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing error string for known errors.
// Shapes match what the portal frontend expects in the "error" field.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request"
	case errors.Is(err, ErrUnknownAction):
		return "Unknown action"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
		return "Unauthorized"
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserBanned):
		return "Invalid credentials"
	case errors.Is(err, ErrAccessDenied):
		return "Access denied"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrTrackNotFound):
		return "Music track not found"
	case errors.Is(err, ErrPartnerNotFound):
		return "Partner not found"
	case errors.Is(err, ErrDuplicateUser):
		return "Username or email already exists"
	default:
		return "Internal server error"
	}
}

// AuditError represents a failure to append an audit record for a
// privileged mutation that already committed
type AuditError struct {
	AdminID    uint64
	ActionType string
	Err        error
}

// Error implements the error interface for AuditError
func (e *AuditError) Error() string {
	return "failed to record admin action " + e.ActionType + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AuditError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuditError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "audit_error",
		"admin_id":    e.AdminID,
		"action_type": e.ActionType,
		"error":       e.Err.Error(),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTrackNotFound) ||
		errors.Is(err, ErrPartnerNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsAuthError checks if the error terminates the request before any mutation
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserBanned) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrAccessDenied)
}
