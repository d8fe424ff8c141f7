package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/handler"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures the two action-dispatched endpoints
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	adminUseCase usecase.AdminUseCase,
) {
	// Preflight requests are answered by the CORS middleware; the handlers
	// below are only reached when that middleware is missing from the chain
	preflight := func(c *gin.Context) { c.Status(http.StatusOK) }

	router.POST("/auth", authHandler.Handle)
	router.OPTIONS("/auth", preflight)

	router.POST("/admin", middleware.AdminAuth(adminUseCase), adminHandler.Handle)
	router.OPTIONS("/admin", preflight)
}

// SetupMiddlewares configures global middlewares in the correct order
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
