package entity

import (
	"testing"
	"time"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coremocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Successful user creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("dracula", "dracula@example.com", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "dracula", user.Username)
		assert.Equal(t, "dracula@example.com", user.Email)
		assert.Equal(t, StartingBloodPoints, user.BloodPoints)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.False(t, user.IsAdmin)
		assert.False(t, user.IsBanned)
		assert.Nil(t, user.LastLogin)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		cases := []struct {
			name     string
			username string
			email    string
			hash     string
		}{
			{"empty username", "", "a@b.com", "hash"},
			{"empty email", "dracula", "", "hash"},
			{"empty password hash", "dracula", "a@b.com", ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.username, tc.email, tc.hash, mockTime)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, errs.ErrMissingFields)
			})
		}
	})
}

func TestAdjustPoints(t *testing.T) {
	user := &User{BloodPoints: 100}

	user.AdjustPoints(50)
	assert.Equal(t, int64(150), user.BloodPoints)

	user.AdjustPoints(-200)
	assert.Equal(t, int64(-50), user.BloodPoints, "balance has no floor")
}

func TestTouchLogin(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	user := &User{}
	user.TouchLogin(mockTime)

	require.NotNil(t, user.LastLogin)
	assert.Equal(t, fixedTime, *user.LastLogin)
}
