package model

import (
	"time"
)

// User represents the database model for user accounts
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	BloodPoints  int64     `gorm:"not null;default:0"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsBanned     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	LastLogin    *time.Time
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
