package model

import (
	"time"
)

// Partner represents the database model for partner listings
type Partner struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null;size:255"`
	URL         string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
