package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBanUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Bans the target and records the action", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().SetBanned(mock.Anything, uint64(5), true).Return(nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(action *entity.AdminAction) bool {
			return action.AdminID == 1 &&
				action.ActionType == "ban_user" &&
				action.TargetID != nil && *action.TargetID == 5
		})).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().BanUser(ctx, 1, 5)
		assert.NoError(t, err)
	})

	t.Run("Banning an absent account still succeeds", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().SetBanned(mock.Anything, uint64(999), true).Return(nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().BanUser(ctx, 1, 999)
		assert.NoError(t, err)
	})

	t.Run("Audit failure surfaces as AuditError", func(t *testing.T) {
		m := newAdminMocks(t)

		insertErr := errors.New("insert failed")
		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().SetBanned(mock.Anything, uint64(5), true).Return(nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(insertErr).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		err := m.useCase().BanUser(ctx, 1, 5)

		require.Error(t, err)
		var auditErr *errs.AuditError
		require.ErrorAs(t, err, &auditErr)
		assert.Equal(t, uint64(1), auditErr.AdminID)
		assert.Equal(t, "ban_user", auditErr.ActionType)
		assert.ErrorIs(t, err, insertErr)
	})
}

func TestUnbanUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	m := newAdminMocks(t)

	m.timeMock.EXPECT().Now().Return(fixedTime).Once()
	m.userRepo.EXPECT().SetBanned(mock.Anything, uint64(5), false).Return(nil).Once()
	m.auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(action *entity.AdminAction) bool {
		return action.ActionType == "unban_user"
	})).Return(nil).Once()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

	err := m.useCase().UnbanUser(ctx, 1, 5)
	assert.NoError(t, err)
}

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Grants the admin flag", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().SetAdmin(mock.Anything, uint64(5), true).Return(nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(action *entity.AdminAction) bool {
			return action.ActionType == "set_admin" &&
				action.Details != nil && *action.Details == "true"
		})).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().SetAdmin(ctx, 1, 5, true)
		assert.NoError(t, err)
	})

	t.Run("Revokes the admin flag", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().SetAdmin(mock.Anything, uint64(5), false).Return(nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(action *entity.AdminAction) bool {
			return action.Details != nil && *action.Details == "false"
		})).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().SetAdmin(ctx, 1, 5, false)
		assert.NoError(t, err)
	})
}

func TestAddBloodPoints(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Applies the delta and records it", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().AdjustPoints(mock.Anything, uint64(5), int64(-50)).Return(int64(50), nil).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(action *entity.AdminAction) bool {
			return action.ActionType == "add_blood_points" &&
				action.Details != nil && *action.Details == "-50"
		})).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().AddBloodPoints(ctx, 1, 5, -50)
		assert.NoError(t, err)
	})

	t.Run("Absent target account is tolerated", func(t *testing.T) {
		m := newAdminMocks(t)

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().AdjustPoints(mock.Anything, uint64(999), int64(10)).Return(int64(0), errs.ErrUserNotFound).Once()
		m.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().AddBloodPoints(ctx, 1, 999, 10)
		assert.NoError(t, err)
	})

	t.Run("Database failure is surfaced", func(t *testing.T) {
		m := newAdminMocks(t)

		databaseError := errors.New("connection lost")
		m.userRepo.EXPECT().AdjustPoints(mock.Anything, uint64(5), int64(10)).Return(int64(0), databaseError).Once()

		err := m.useCase().AddBloodPoints(ctx, 1, 5, 10)
		assert.Equal(t, databaseError, err)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	m := newAdminMocks(t)

	users := []*entity.User{{ID: 2, Username: "renfield"}, {ID: 1, Username: "admin"}}
	m.userRepo.EXPECT().List(mock.Anything).Return(users, nil).Once()

	got, err := m.useCase().ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
