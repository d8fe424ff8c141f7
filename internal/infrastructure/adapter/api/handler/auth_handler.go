package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/dto"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles the action-dispatched /auth endpoint
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Handle dispatches the POST /auth request by its action field
func (h *AuthHandler) Handle(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or malformed body dispatches as an empty request,
		// which fails action parsing below
		req = dto.AuthRequest{}
	}

	action, err := dto.ParseAuthAction(req.Action)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	ctx := c.Request.Context()
	token := c.GetHeader(middleware.AuthTokenHeader)

	switch action {
	case dto.ActionRegister:
		result, err := h.authUseCase.Register(ctx, req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, result)

	case dto.ActionLogin:
		result, err := h.authUseCase.Login(ctx, req.Username, req.Password)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, result)

	case dto.ActionLogout:
		if err := h.authUseCase.Logout(ctx, token); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionUpdatePoints:
		balance, err := h.authUseCase.UpdatePoints(ctx, token, req.PointsDelta)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.PointsResponse{BloodPoints: balance})
	}
}
