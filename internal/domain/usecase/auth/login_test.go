package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coremocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/core"
	persistencemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Successful login", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		storedUser := &entity.User{
			ID:           7,
			Username:     "dracula",
			Email:        "dracula@example.com",
			PasswordHash: hashForTest(t, "secret"),
			BloodPoints:  250,
		}

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "dracula").Return(storedUser, nil).Once()
		mockUserRepo.EXPECT().TouchLastLogin(mock.Anything, uint64(7)).Return(nil).Once()
		mockSessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(session *entity.Session) bool {
			return session.UserID == 7
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		result, err := authUseCase.Login(ctx, "dracula", "secret")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(250), result.User.BloodPoints)
	})

	t.Run("Unknown username yields invalid credentials", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound).Once()

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		result, err := authUseCase.Login(ctx, "nobody", "secret")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password yields invalid credentials", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		storedUser := &entity.User{
			ID:           7,
			Username:     "dracula",
			PasswordHash: hashForTest(t, "secret"),
		}

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "dracula").Return(storedUser, nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		result, err := authUseCase.Login(ctx, "dracula", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Banned account cannot log in", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		storedUser := &entity.User{
			ID:           7,
			Username:     "dracula",
			PasswordHash: hashForTest(t, "secret"),
			IsBanned:     true,
		}

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "dracula").Return(storedUser, nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		result, err := authUseCase.Login(ctx, "dracula", "secret")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserBanned)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		result, err := authUseCase.Login(ctx, "", "secret")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Revokes the session", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockSessionRepo.EXPECT().Delete(mock.Anything, "token-123").Return(nil).Once()

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		err := authUseCase.Logout(ctx, "token-123")
		assert.NoError(t, err)
	})

	t.Run("Empty token is unauthorized", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSessionRepo := persistencemocks.NewMockSessionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		authUseCase := NewAuthUseCase(mockUserRepo, mockSessionRepo, DefaultSessionTTL, mockTime, mockLogger)

		err := authUseCase.Logout(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
