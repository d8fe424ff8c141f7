package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/pr-poehali-dev/mini-games-creator/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockAuthUseCase := usecasemocks.NewMockAuthUseCase(t)
	authHandler := NewAuthHandler(mockAuthUseCase, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/auth", authHandler.Handle)

	return router, mockAuthUseCase
}

func postJSON(router *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler(t *testing.T) {
	t.Run("Unknown action", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(router, "/auth", `{"action": "fly"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Unknown action"}`, w.Body.String())
	})

	t.Run("Malformed body dispatches as an empty request", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(router, "/auth", `{not json`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Unknown action"}`, w.Body.String())
	})

	t.Run("Register returns the token and user", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		result := &usecase.AuthResult{
			Token: "token-123",
			User: usecase.UserSnapshot{
				ID:          7,
				Username:    "dracula",
				Email:       "dracula@example.com",
				BloodPoints: 100,
			},
		}
		mockAuthUseCase.EXPECT().
			Register(mock.Anything, "dracula", "dracula@example.com", "secret").
			Return(result, nil).Once()

		body := `{"action": "register", "username": "dracula", "email": "dracula@example.com", "password": "secret"}`
		w := postJSON(router, "/auth", body, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"token": "token-123",
			"user": {"id": 7, "username": "dracula", "email": "dracula@example.com", "blood_points": 100}
		}`, w.Body.String())
	})

	t.Run("Register with a taken username", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			Register(mock.Anything, "dracula", "dracula@example.com", "secret").
			Return(nil, errs.ErrDuplicateUser).Once()

		body := `{"action": "register", "username": "dracula", "email": "dracula@example.com", "password": "secret"}`
		w := postJSON(router, "/auth", body, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "Username or email already exists"}`, w.Body.String())
	})

	t.Run("Register with missing fields", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			Register(mock.Anything, "dracula", "", "").
			Return(nil, errs.ErrMissingFields).Once()

		w := postJSON(router, "/auth", `{"action": "register", "username": "dracula"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Missing required fields"}`, w.Body.String())
	})

	t.Run("Login with bad credentials", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			Login(mock.Anything, "dracula", "wrong").
			Return(nil, errs.ErrInvalidCredentials).Once()

		w := postJSON(router, "/auth", `{"action": "login", "username": "dracula", "password": "wrong"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "Invalid credentials"}`, w.Body.String())
	})

	t.Run("Update points resolves the token from the header", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			UpdatePoints(mock.Anything, "token-123", int64(25)).
			Return(int64(125), nil).Once()

		headers := map[string]string{"X-Auth-Token": "token-123"}
		w := postJSON(router, "/auth", `{"action": "update_points", "points_delta": 25}`, headers)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"blood_points": 125}`, w.Body.String())
	})

	t.Run("Update points without a token", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			UpdatePoints(mock.Anything, "", int64(25)).
			Return(int64(0), errs.ErrUnauthorized).Once()

		w := postJSON(router, "/auth", `{"action": "update_points", "points_delta": 25}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
	})

	t.Run("Logout acknowledges success", func(t *testing.T) {
		router, mockAuthUseCase := setupAuthRouter(t)

		mockAuthUseCase.EXPECT().
			Logout(mock.Anything, "token-123").
			Return(nil).Once()

		headers := map[string]string{"X-Auth-Token": "token-123"}
		w := postJSON(router, "/auth", `{"action": "logout"}`, headers)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})
}
