package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/model"
)

// MusicTrackRepository implements the MusicTrackRepository port using GORM
type MusicTrackRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMusicTrackRepository creates a new MusicTrackRepository instance
func NewMusicTrackRepository(db *gorm.DB, logger coreport.Logger) *MusicTrackRepository {
	return &MusicTrackRepository{
		db:     db,
		logger: logger,
	}
}

func trackModelToEntity(m *model.MusicTrack) *entity.MusicTrack {
	return &entity.MusicTrack{
		ID:        m.ID,
		Title:     m.Title,
		Game:      m.Game,
		URL:       m.URL,
		Duration:  m.Duration,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a new track and fills in the generated ID
func (r *MusicTrackRepository) Create(ctx context.Context, track *entity.MusicTrack) error {
	trackModel := model.MusicTrack{
		Title:     track.Title,
		Game:      track.Game,
		URL:       track.URL,
		Duration:  track.Duration,
		CreatedAt: track.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&trackModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	track.ID = trackModel.ID

	r.logger.Info("Music track created", map[string]any{
		"track_id": track.ID,
		"title":    track.Title,
	})
	return nil
}

// Delete removes a track by ID. Affecting zero rows is not an error.
func (r *MusicTrackRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.MusicTrack{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	r.logger.Info("Music track deleted", map[string]any{
		"track_id": id,
		"rows":     result.RowsAffected,
	})
	return nil
}

// List returns all tracks, newest first
func (r *MusicTrackRepository) List(ctx context.Context) ([]*entity.MusicTrack, error) {
	var trackModels []model.MusicTrack
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&trackModels)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return []*entity.MusicTrack{}, nil
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	tracks := make([]*entity.MusicTrack, 0, len(trackModels))
	for i := range trackModels {
		tracks = append(tracks, trackModelToEntity(&trackModels[i]))
	}
	return tracks, nil
}
