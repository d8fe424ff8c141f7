package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/model"
)

// AdminActionRepository implements the AdminActionRepository port using GORM
type AdminActionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdminActionRepository creates a new AdminActionRepository instance
func NewAdminActionRepository(db *gorm.DB, logger coreport.Logger) *AdminActionRepository {
	return &AdminActionRepository{
		db:     db,
		logger: logger,
	}
}

// auditRow is the joined projection returned by ListLatest
type auditRow struct {
	ID         uint64
	AdminID    uint64
	ActionType string
	TargetID   *uint64
	Details    *string
	CreatedAt  time.Time
	AdminName  string
}

// Append inserts a new audit record. Records are never updated or deleted.
func (r *AdminActionRepository) Append(ctx context.Context, action *entity.AdminAction) error {
	actionModel := model.AdminAction{
		AdminID:    action.AdminID,
		ActionType: action.ActionType,
		TargetID:   action.TargetID,
		Details:    action.Details,
		CreatedAt:  action.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&actionModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	action.ID = actionModel.ID
	return nil
}

// ListLatest returns at most limit records joined with the actor's username,
// newest first
func (r *AdminActionRepository) ListLatest(ctx context.Context, limit int) ([]*entity.AdminAction, error) {
	var rows []auditRow

	result := r.db.WithContext(ctx).
		Model(&model.AdminAction{}).
		Select("admin_actions.id, admin_actions.admin_id, admin_actions.action_type, admin_actions.target_id, admin_actions.details, admin_actions.created_at, users.username AS admin_name").
		Joins("JOIN users ON users.id = admin_actions.admin_id").
		Order("admin_actions.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	actions := make([]*entity.AdminAction, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		actions = append(actions, &entity.AdminAction{
			ID:         row.ID,
			AdminID:    row.AdminID,
			ActionType: row.ActionType,
			TargetID:   row.TargetID,
			Details:    row.Details,
			CreatedAt:  row.CreatedAt,
			AdminName:  row.AdminName,
		})
	}
	return actions, nil
}
