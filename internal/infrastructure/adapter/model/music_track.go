package model

import (
	"time"
)

// MusicTrack represents the database model for soundtrack catalog entries
type MusicTrack struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null;size:255"`
	Game      string    `gorm:"size:255"`
	URL       string    `gorm:"not null;type:text"`
	Duration  int64     `gorm:"not null;default:0"` // seconds
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for MusicTrack
func (MusicTrack) TableName() string {
	return "music_tracks"
}
