package entity

import (
	"testing"
	"time"

	coremocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	ttl := 168 * time.Hour

	t.Run("Issues a token with the configured lifetime", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		session, err := NewSession(42, ttl, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), session.UserID)
		assert.Equal(t, fixedTime, session.CreatedAt)
		assert.Equal(t, fixedTime.Add(ttl), session.ExpiresAt)
		// 32 random bytes encode to 43 characters without padding
		assert.Len(t, session.Token, 43)
	})

	t.Run("Tokens are unique across sessions", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Times(2)

		first, err := NewSession(1, ttl, mockTime)
		require.NoError(t, err)
		second, err := NewSession(1, ttl, mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestSessionExpired(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	session := &Session{ExpiresAt: fixedTime}

	assert.False(t, session.Expired(fixedTime.Add(-time.Second)))
	assert.False(t, session.Expired(fixedTime), "the boundary instant is still live")
	assert.True(t, session.Expired(fixedTime.Add(time.Second)))
}
