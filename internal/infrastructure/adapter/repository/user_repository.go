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

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		BloodPoints:  m.BloodPoints,
		IsAdmin:      m.IsAdmin,
		IsBanned:     m.IsBanned,
		CreatedAt:    m.CreatedAt,
		LastLogin:    m.LastLogin,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create inserts a new user and fills in the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		BloodPoints:  user.BloodPoints,
		IsAdmin:      user.IsAdmin,
		IsBanned:     user.IsBanned,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by id", result.Error)
	}

	return userModelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by exact username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error)
	}

	return userModelToEntity(&userModel), nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}

// SetBanned sets the banned flag. Affecting zero rows is not an error;
// moderation of an absent account is deliberately permissive.
func (r *UserRepository) SetBanned(ctx context.Context, id uint64, banned bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_banned", banned)
	if result.Error != nil {
		return r.handleDatabaseError("setting banned flag", result.Error)
	}
	return nil
}

// SetAdmin sets the admin flag
func (r *UserRepository) SetAdmin(ctx context.Context, id uint64, isAdmin bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin)
	if result.Error != nil {
		return r.handleDatabaseError("setting admin flag", result.Error)
	}
	return nil
}

// AdjustPoints atomically applies a signed delta to the blood-point balance
// and returns the resulting balance. The increment happens in the database
// so concurrent writers never lose an update.
func (r *UserRepository) AdjustPoints(ctx context.Context, id uint64, delta int64) (int64, error) {
	var balance int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ?", id).
			Update("blood_points", gorm.Expr("blood_points + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}

		var userModel model.User
		if err := tx.Select("blood_points").First(&userModel, id).Error; err != nil {
			return err
		}
		balance = userModel.BloodPoints
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return 0, errs.ErrUserNotFound
		}
		return 0, r.handleDatabaseError("adjusting blood points", err)
	}

	return balance, nil
}

// TouchLastLogin records the last successful login time
func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", gorm.Expr("NOW()"))
	if result.Error != nil {
		return r.handleDatabaseError("recording login time", result.Error)
	}
	return nil
}
