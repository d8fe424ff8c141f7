package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/model"
)

// PartnerRepository implements the PartnerRepository port using GORM
type PartnerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPartnerRepository creates a new PartnerRepository instance
func NewPartnerRepository(db *gorm.DB, logger coreport.Logger) *PartnerRepository {
	return &PartnerRepository{
		db:     db,
		logger: logger,
	}
}

func partnerModelToEntity(m *model.Partner) *entity.Partner {
	return &entity.Partner{
		ID:          m.ID,
		Name:        m.Name,
		URL:         m.URL,
		LogoURL:     m.LogoURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// Create inserts a new partner and fills in the generated ID
func (r *PartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partnerModel := model.Partner{
		Name:        partner.Name,
		URL:         partner.URL,
		LogoURL:     partner.LogoURL,
		Description: partner.Description,
		CreatedAt:   partner.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&partnerModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	partner.ID = partnerModel.ID

	r.logger.Info("Partner created", map[string]any{
		"partner_id": partner.ID,
		"name":       partner.Name,
	})
	return nil
}

// Delete removes a partner by ID. Affecting zero rows is not an error.
func (r *PartnerRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Partner{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	r.logger.Info("Partner deleted", map[string]any{
		"partner_id": id,
		"rows":       result.RowsAffected,
	})
	return nil
}

// List returns all partners, newest first
func (r *PartnerRepository) List(ctx context.Context) ([]*entity.Partner, error) {
	var partnerModels []model.Partner
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&partnerModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for i := range partnerModels {
		partners = append(partners, partnerModelToEntity(&partnerModels[i]))
	}
	return partners, nil
}
