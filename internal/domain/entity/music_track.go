package entity

import (
	"time"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// MusicTrack represents a curated soundtrack entry
type MusicTrack struct {
	ID        uint64
	Title     string
	Game      string // Label of the game the track belongs to
	URL       string // Playback URL
	Duration  int64  // Track length in seconds, 0 when unknown
	CreatedAt time.Time
}

// NewMusicTrack creates a new track entry. Duration defaults to 0 upstream
// when the caller omits it.
func NewMusicTrack(title, game, url string, duration int64, timeProvider coreport.TimeProvider) (*MusicTrack, error) {
	if title == "" || url == "" {
		return nil, errs.ErrMissingFields
	}
	if duration < 0 {
		duration = 0
	}

	return &MusicTrack{
		Title:     title,
		Game:      game,
		URL:       url,
		Duration:  duration,
		CreatedAt: timeProvider.Now(),
	}, nil
}
