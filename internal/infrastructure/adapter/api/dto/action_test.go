package dto

import (
	"testing"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthAction(t *testing.T) {
	t.Run("Accepts the four auth actions", func(t *testing.T) {
		for _, raw := range []string{"register", "login", "logout", "update_points"} {
			action, err := ParseAuthAction(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, Action(raw), action)
		}
	})

	t.Run("Rejects admin actions on the auth endpoint", func(t *testing.T) {
		_, err := ParseAuthAction("ban_user")
		assert.ErrorIs(t, err, errs.ErrUnknownAction)
	})

	t.Run("Rejects the empty string", func(t *testing.T) {
		_, err := ParseAuthAction("")
		assert.ErrorIs(t, err, errs.ErrUnknownAction)
	})
}

func TestParseAdminAction(t *testing.T) {
	t.Run("Accepts the twelve admin actions", func(t *testing.T) {
		raws := []string{
			"get_users", "ban_user", "unban_user", "set_admin", "add_blood_points",
			"add_music", "remove_music", "get_music",
			"add_partner", "remove_partner", "get_partners",
			"get_admin_logs",
		}
		for _, raw := range raws {
			action, err := ParseAdminAction(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, Action(raw), action)
		}
	})

	t.Run("Rejects auth actions on the admin endpoint", func(t *testing.T) {
		_, err := ParseAdminAction("login")
		assert.ErrorIs(t, err, errs.ErrUnknownAction)
	})

	t.Run("Rejects unknown strings", func(t *testing.T) {
		_, err := ParseAdminAction("drop_tables")
		assert.ErrorIs(t, err, errs.ErrUnknownAction)
	})
}

func TestAdminFlag(t *testing.T) {
	t.Run("Defaults to true when absent", func(t *testing.T) {
		req := &AdminRequest{}
		assert.True(t, req.AdminFlag())
	})

	t.Run("Honors an explicit false", func(t *testing.T) {
		value := false
		req := &AdminRequest{IsAdmin: &value}
		assert.False(t, req.AdminFlag())
	})
}
