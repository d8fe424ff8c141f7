package usecase

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// TrackInput carries the fields of a new soundtrack entry
type TrackInput struct {
	Title    string
	Game     string
	URL      string
	Duration int64
}

// PartnerInput carries the fields of a new partner listing
type PartnerInput struct {
	Name        string
	URL         string
	LogoURL     string
	Description string
}

// AdminUseCase defines the administrative console operations.
// Every mutating operation appends exactly one audit record naming the actor.
type AdminUseCase interface {
	// Authorize resolves the session token to a user and requires the admin
	// flag. A missing token yields ErrUnauthorized, a known user without the
	// flag yields ErrAccessDenied.
	Authorize(ctx context.Context, token string) (*entity.User, error)

	// ListUsers returns all accounts, newest first
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// BanUser sets the banned flag for the target account
	BanUser(ctx context.Context, adminID, userID uint64) error

	// UnbanUser clears the banned flag for the target account
	UnbanUser(ctx context.Context, adminID, userID uint64) error

	// SetAdmin sets the admin flag to the given value for the target account
	SetAdmin(ctx context.Context, adminID, userID uint64, isAdmin bool) error

	// AddBloodPoints applies a signed delta to the target's balance
	AddBloodPoints(ctx context.Context, adminID, userID uint64, points int64) error

	// AddMusicTrack inserts a catalog entry and returns its new ID
	AddMusicTrack(ctx context.Context, adminID uint64, input TrackInput) (uint64, error)

	// RemoveMusicTrack deletes a catalog entry
	RemoveMusicTrack(ctx context.Context, adminID, trackID uint64) error

	// ListMusicTracks returns the catalog, newest first
	ListMusicTracks(ctx context.Context) ([]*entity.MusicTrack, error)

	// AddPartner inserts a partner listing and returns its new ID
	AddPartner(ctx context.Context, adminID uint64, input PartnerInput) (uint64, error)

	// RemovePartner deletes a partner listing
	RemovePartner(ctx context.Context, adminID, partnerID uint64) error

	// ListPartners returns all partner listings, newest first
	ListPartners(ctx context.Context) ([]*entity.Partner, error)

	// ListAdminLogs returns the latest audit records joined with the actor's
	// username, newest first.
	ListAdminLogs(ctx context.Context) ([]*entity.AdminAction, error)
}
