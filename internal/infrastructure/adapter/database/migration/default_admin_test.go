package migration

import (
	"context"
	"testing"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	coremocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/core"
	persistencemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/persistence"
	usecasemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedDefaultAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty password skips seeding", func(t *testing.T) {
		mockAuthUseCase := usecasemocks.NewMockAuthUseCase(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		err := SeedDefaultAdmin(ctx, mockAuthUseCase, mockUserRepo, "admin", "admin@localhost", "", mockLogger)
		assert.NoError(t, err)
	})

	t.Run("Fresh deployment registers and promotes the account", func(t *testing.T) {
		mockAuthUseCase := usecasemocks.NewMockAuthUseCase(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(nil, errs.ErrUserNotFound).Once()
		mockAuthUseCase.EXPECT().Register(mock.Anything, "admin", "admin@localhost", "secret").Return(&usecase.AuthResult{
			Token: "token-123",
			User:  usecase.UserSnapshot{ID: 1, Username: "admin"},
		}, nil).Once()
		mockUserRepo.EXPECT().SetAdmin(mock.Anything, uint64(1), true).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := SeedDefaultAdmin(ctx, mockAuthUseCase, mockUserRepo, "admin", "admin@localhost", "secret", mockLogger)
		assert.NoError(t, err)
	})

	t.Run("Existing non-admin account is promoted", func(t *testing.T) {
		mockAuthUseCase := usecasemocks.NewMockAuthUseCase(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 1, Username: "admin"}
		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(existing, nil).Once()
		mockUserRepo.EXPECT().SetAdmin(mock.Anything, uint64(1), true).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := SeedDefaultAdmin(ctx, mockAuthUseCase, mockUserRepo, "admin", "admin@localhost", "secret", mockLogger)
		assert.NoError(t, err)
	})

	t.Run("Existing admin account is left alone", func(t *testing.T) {
		mockAuthUseCase := usecasemocks.NewMockAuthUseCase(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 1, Username: "admin", IsAdmin: true}
		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(existing, nil).Once()

		err := SeedDefaultAdmin(ctx, mockAuthUseCase, mockUserRepo, "admin", "admin@localhost", "secret", mockLogger)
		assert.NoError(t, err)
	})
}
