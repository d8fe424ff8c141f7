package admin

import (
	"context"
	"testing"
	"time"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coremocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/core"
	persistencemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	userRepo    *persistencemocks.MockUserRepository
	trackRepo   *persistencemocks.MockMusicTrackRepository
	partnerRepo *persistencemocks.MockPartnerRepository
	auditRepo   *persistencemocks.MockAdminActionRepository
	sessionRepo *persistencemocks.MockSessionRepository
	timeMock    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newAdminMocks(t *testing.T) *adminMocks {
	return &adminMocks{
		userRepo:    persistencemocks.NewMockUserRepository(t),
		trackRepo:   persistencemocks.NewMockMusicTrackRepository(t),
		partnerRepo: persistencemocks.NewMockPartnerRepository(t),
		auditRepo:   persistencemocks.NewMockAdminActionRepository(t),
		sessionRepo: persistencemocks.NewMockSessionRepository(t),
		timeMock:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
}

func (m *adminMocks) useCase() *AdminUseCase {
	return NewAdminUseCase(
		m.userRepo,
		m.trackRepo,
		m.partnerRepo,
		m.auditRepo,
		m.sessionRepo,
		m.timeMock,
		m.logger,
	)
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Admin session is authorized", func(t *testing.T) {
		m := newAdminMocks(t)

		session := &entity.Session{Token: "token-123", UserID: 1, ExpiresAt: fixedTime.Add(time.Hour)}
		admin := &entity.User{ID: 1, Username: "admin", IsAdmin: true}

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-123").Return(session, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(admin, nil).Once()

		got, err := m.useCase().Authorize(ctx, "token-123")

		require.NoError(t, err)
		assert.Equal(t, admin, got)
	})

	t.Run("Missing token is unauthorized", func(t *testing.T) {
		m := newAdminMocks(t)

		got, err := m.useCase().Authorize(ctx, "")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unknown token is unauthorized", func(t *testing.T) {
		m := newAdminMocks(t)

		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "stale").Return(nil, errs.ErrSessionNotFound).Once()

		got, err := m.useCase().Authorize(ctx, "stale")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Expired session", func(t *testing.T) {
		m := newAdminMocks(t)

		session := &entity.Session{Token: "old", UserID: 1, ExpiresAt: fixedTime.Add(-time.Hour)}

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "old").Return(session, nil).Once()

		got, err := m.useCase().Authorize(ctx, "old")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("Session behind a deleted account is denied", func(t *testing.T) {
		m := newAdminMocks(t)

		session := &entity.Session{Token: "token-123", UserID: 9, ExpiresAt: fixedTime.Add(time.Hour)}

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-123").Return(session, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		got, err := m.useCase().Authorize(ctx, "token-123")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("Non-admin is denied", func(t *testing.T) {
		m := newAdminMocks(t)

		session := &entity.Session{Token: "token-123", UserID: 2, ExpiresAt: fixedTime.Add(time.Hour)}
		regular := &entity.User{ID: 2, Username: "renfield"}

		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-123").Return(session, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(regular, nil).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		got, err := m.useCase().Authorize(ctx, "token-123")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrAccessDenied)
	})
}

func TestListAdminLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads at most the capped number of records", func(t *testing.T) {
		m := newAdminMocks(t)

		records := []*entity.AdminAction{
			{ID: 2, AdminID: 1, ActionType: "ban_user", AdminName: "admin"},
			{ID: 1, AdminID: 1, ActionType: "add_music", AdminName: "admin"},
		}
		m.auditRepo.EXPECT().ListLatest(mock.Anything, 100).Return(records, nil).Once()

		got, err := m.useCase().ListAdminLogs(ctx)

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})
}
