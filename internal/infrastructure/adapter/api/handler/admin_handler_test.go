package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/middleware"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockAdminUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockAdminUseCase := usecasemocks.NewMockAdminUseCase(t)
	adminHandler := NewAdminHandler(mockAdminUseCase, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/admin", middleware.AdminAuth(mockAdminUseCase), adminHandler.Handle)

	return router, mockAdminUseCase
}

func expectAdmin(m *usecasemocks.MockAdminUseCase) *entity.User {
	admin := &entity.User{ID: 1, Username: "admin", IsAdmin: true}
	m.EXPECT().Authorize(mock.Anything, "token-123").Return(admin, nil).Once()
	return admin
}

var adminHeaders = map[string]string{"X-Auth-Token": "token-123"}

func TestAdminHandlerAuthorization(t *testing.T) {
	t.Run("Missing token is rejected before the body is read", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)

		mockAdminUseCase.EXPECT().Authorize(mock.Anything, "").Return(nil, errs.ErrUnauthorized).Once()

		w := postJSON(router, "/admin", `{"action": "ban_user", "user_id": 5}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
	})

	t.Run("Non-admin session is rejected", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)

		mockAdminUseCase.EXPECT().Authorize(mock.Anything, "token-123").Return(nil, errs.ErrAccessDenied).Once()

		w := postJSON(router, "/admin", `{"action": "get_users"}`, adminHeaders)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error": "Access denied"}`, w.Body.String())
	})

	t.Run("Malformed body is a client error", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		expectAdmin(mockAdminUseCase)

		w := postJSON(router, "/admin", `{not json`, adminHeaders)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Invalid request"}`, w.Body.String())
	})

	t.Run("Unknown action", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		expectAdmin(mockAdminUseCase)

		w := postJSON(router, "/admin", `{"action": "drop_tables"}`, adminHeaders)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Unknown action"}`, w.Body.String())
	})
}

func TestAdminHandlerModeration(t *testing.T) {
	t.Run("get_users returns the moderation view", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		expectAdmin(mockAdminUseCase)

		createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		users := []*entity.User{
			{ID: 2, Username: "renfield", BloodPoints: 40, IsBanned: true, CreatedAt: createdAt},
		}
		mockAdminUseCase.EXPECT().ListUsers(mock.Anything).Return(users, nil).Once()

		w := postJSON(router, "/admin", `{"action": "get_users"}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id": 2,
			"username": "renfield",
			"blood_points": 40,
			"is_admin": false,
			"is_banned": true,
			"created_at": "2024-05-10T12:00:00Z"
		}]`, w.Body.String())
	})

	t.Run("ban_user acts as the session identity", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		mockAdminUseCase.EXPECT().BanUser(mock.Anything, admin.ID, uint64(5)).Return(nil).Once()

		w := postJSON(router, "/admin", `{"action": "ban_user", "user_id": 5}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("set_admin defaults the flag to true", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		mockAdminUseCase.EXPECT().SetAdmin(mock.Anything, admin.ID, uint64(5), true).Return(nil).Once()

		w := postJSON(router, "/admin", `{"action": "set_admin", "user_id": 5}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("set_admin honors an explicit false", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		mockAdminUseCase.EXPECT().SetAdmin(mock.Anything, admin.ID, uint64(5), false).Return(nil).Once()

		w := postJSON(router, "/admin", `{"action": "set_admin", "user_id": 5, "is_admin": false}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("add_blood_points forwards the signed delta", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		mockAdminUseCase.EXPECT().AddBloodPoints(mock.Anything, admin.ID, uint64(5), int64(-50)).Return(nil).Once()

		w := postJSON(router, "/admin", `{"action": "add_blood_points", "user_id": 5, "points": -50}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})
}

func TestAdminHandlerCatalog(t *testing.T) {
	t.Run("add_music returns the generated id", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		input := usecase.TrackInput{
			Title:    "Bloody Tears",
			Game:     "Castlevania II",
			URL:      "https://cdn.example.com/bloody-tears.mp3",
			Duration: 184,
		}
		mockAdminUseCase.EXPECT().AddMusicTrack(mock.Anything, admin.ID, input).Return(uint64(11), nil).Once()

		body := `{"action": "add_music", "title": "Bloody Tears", "game": "Castlevania II", "url": "https://cdn.example.com/bloody-tears.mp3", "duration": 184}`
		w := postJSON(router, "/admin", body, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "id": 11}`, w.Body.String())
	})

	t.Run("remove_music acknowledges without an id", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		mockAdminUseCase.EXPECT().RemoveMusicTrack(mock.Anything, admin.ID, uint64(11)).Return(nil).Once()

		w := postJSON(router, "/admin", `{"action": "remove_music", "track_id": 11}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("add_partner returns the generated id", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		admin := expectAdmin(mockAdminUseCase)

		input := usecase.PartnerInput{Name: "Night Games"}
		mockAdminUseCase.EXPECT().AddPartner(mock.Anything, admin.ID, input).Return(uint64(3), nil).Once()

		w := postJSON(router, "/admin", `{"action": "add_partner", "name": "Night Games"}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "id": 3}`, w.Body.String())
	})

	t.Run("get_partners returns the listing view", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		expectAdmin(mockAdminUseCase)

		createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		partners := []*entity.Partner{
			{ID: 3, Name: "Night Games", URL: "https://night.example.com", CreatedAt: createdAt},
		}
		mockAdminUseCase.EXPECT().ListPartners(mock.Anything).Return(partners, nil).Once()

		w := postJSON(router, "/admin", `{"action": "get_partners"}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id": 3,
			"name": "Night Games",
			"url": "https://night.example.com",
			"logo_url": "",
			"description": "",
			"created_at": "2024-05-10T12:00:00Z"
		}]`, w.Body.String())
	})

	t.Run("get_admin_logs includes the actor's username", func(t *testing.T) {
		router, mockAdminUseCase := setupAdminRouter(t)
		expectAdmin(mockAdminUseCase)

		createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		target := uint64(5)
		details := "spam"
		logs := []*entity.AdminAction{
			{ID: 9, AdminID: 1, ActionType: "ban_user", TargetID: &target, Details: &details, CreatedAt: createdAt, AdminName: "admin"},
		}
		mockAdminUseCase.EXPECT().ListAdminLogs(mock.Anything).Return(logs, nil).Once()

		w := postJSON(router, "/admin", `{"action": "get_admin_logs"}`, adminHeaders)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id": 9,
			"admin_id": 1,
			"action_type": "ban_user",
			"target_id": 5,
			"details": "spam",
			"created_at": "2024-05-10T12:00:00Z",
			"admin_name": "admin"
		}]`, w.Body.String())
	})
}
