package entity

import (
	"time"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// AdminAction is an append-only audit record of a privileged mutation.
// Rows are never updated or deleted.
type AdminAction struct {
	ID         uint64
	AdminID    uint64  // Acting administrator
	ActionType string  // Free-text tag, e.g. "ban_user"
	TargetID   *uint64 // Optional id of the affected row
	Details    *string // Optional free-text details
	CreatedAt  time.Time

	// AdminName is populated only on joined reads for the audit log view.
	AdminName string
}

// NewAdminAction creates an audit record for the given actor and action tag
func NewAdminAction(adminID uint64, actionType string, timeProvider coreport.TimeProvider) *AdminAction {
	return &AdminAction{
		AdminID:    adminID,
		ActionType: actionType,
		CreatedAt:  timeProvider.Now(),
	}
}

// WithTarget attaches the id of the affected row
func (a *AdminAction) WithTarget(targetID uint64) *AdminAction {
	a.TargetID = &targetID
	return a
}

// WithDetails attaches free-text details
func (a *AdminAction) WithDetails(details string) *AdminAction {
	a.Details = &details
	return a
}
