package persistence

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// MusicTrackRepository defines persistence operations for the soundtrack catalog
type MusicTrackRepository interface {
	// Create inserts a new track and fills in the generated ID
	Create(ctx context.Context, track *entity.MusicTrack) error

	// Delete removes a track by ID. Affecting zero rows is not an error.
	Delete(ctx context.Context, id uint64) error

	// List returns all tracks, newest first
	List(ctx context.Context) ([]*entity.MusicTrack, error)
}

// PartnerRepository defines persistence operations for partner listings
type PartnerRepository interface {
	// Create inserts a new partner and fills in the generated ID
	Create(ctx context.Context, partner *entity.Partner) error

	// Delete removes a partner by ID. Affecting zero rows is not an error.
	Delete(ctx context.Context, id uint64) error

	// List returns all partners, newest first
	List(ctx context.Context) ([]*entity.Partner, error)
}
