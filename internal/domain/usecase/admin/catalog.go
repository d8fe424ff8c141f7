package admin

import (
	"context"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
)

// Action type tags written to the audit trail
const (
	actionAddMusic      = "add_music"
	actionRemoveMusic   = "remove_music"
	actionAddPartner    = "add_partner"
	actionRemovePartner = "remove_partner"
)

// AddMusicTrack inserts a catalog entry and returns its new ID
func (u *AdminUseCase) AddMusicTrack(ctx context.Context, adminID uint64, input usecase.TrackInput) (uint64, error) {
	track, err := entity.NewMusicTrack(input.Title, input.Game, input.URL, input.Duration, u.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := u.trackRepo.Create(ctx, track); err != nil {
		u.logger.Error("Failed to create music track", map[string]any{
			"title": input.Title,
			"error": err.Error(),
		})
		return 0, err
	}

	action := entity.NewAdminAction(adminID, actionAddMusic, u.timeProvider).
		WithTarget(track.ID).
		WithDetails(track.Title)
	if err := u.recordAction(ctx, action); err != nil {
		return 0, err
	}

	return track.ID, nil
}

// RemoveMusicTrack deletes a catalog entry. Naming an absent track affects
// zero rows and still succeeds.
func (u *AdminUseCase) RemoveMusicTrack(ctx context.Context, adminID, trackID uint64) error {
	if err := u.trackRepo.Delete(ctx, trackID); err != nil {
		return err
	}

	action := entity.NewAdminAction(adminID, actionRemoveMusic, u.timeProvider).WithTarget(trackID)
	return u.recordAction(ctx, action)
}

// ListMusicTracks returns the catalog, newest first
func (u *AdminUseCase) ListMusicTracks(ctx context.Context) ([]*entity.MusicTrack, error) {
	return u.trackRepo.List(ctx)
}

// AddPartner inserts a partner listing and returns its new ID
func (u *AdminUseCase) AddPartner(ctx context.Context, adminID uint64, input usecase.PartnerInput) (uint64, error) {
	partner, err := entity.NewPartner(input.Name, input.URL, input.LogoURL, input.Description, u.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := u.partnerRepo.Create(ctx, partner); err != nil {
		u.logger.Error("Failed to create partner", map[string]any{
			"name":  input.Name,
			"error": err.Error(),
		})
		return 0, err
	}

	action := entity.NewAdminAction(adminID, actionAddPartner, u.timeProvider).
		WithTarget(partner.ID).
		WithDetails(partner.Name)
	if err := u.recordAction(ctx, action); err != nil {
		return 0, err
	}

	return partner.ID, nil
}

// RemovePartner deletes a partner listing
func (u *AdminUseCase) RemovePartner(ctx context.Context, adminID, partnerID uint64) error {
	if err := u.partnerRepo.Delete(ctx, partnerID); err != nil {
		return err
	}

	action := entity.NewAdminAction(adminID, actionRemovePartner, u.timeProvider).WithTarget(partnerID)
	return u.recordAction(ctx, action)
}

// ListPartners returns all partner listings, newest first
func (u *AdminUseCase) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	return u.partnerRepo.List(ctx)
}
