package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(CORS())
		router.POST("/auth", func(c *gin.Context) {
			c.Status(http.StatusTeapot)
		})
		return router
	}

	t.Run("Sets cross-origin headers on every response", func(t *testing.T) {
		router := newRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code, "the handler behind the middleware ran")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, X-Auth-Token", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("Preflight short-circuits with an empty 200", func(t *testing.T) {
		router := newRouter()
		router.OPTIONS("/auth", func(c *gin.Context) {
			c.Status(http.StatusTeapot)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/auth", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
