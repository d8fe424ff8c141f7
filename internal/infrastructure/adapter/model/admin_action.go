package model

import (
	"time"
)

// AdminAction represents the database model for the append-only audit trail
type AdminAction struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	AdminID    uint64    `gorm:"not null;index"`
	ActionType string    `gorm:"not null;size:50"`
	TargetID   *uint64
	Details    *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`

	// Define relationships
	Admin User `gorm:"foreignKey:AdminID;references:ID"`
}

// TableName specifies the table name for AdminAction
func (AdminAction) TableName() string {
	return "admin_actions"
}
