package handler

import (
	"github.com/gin-gonic/gin"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to its HTTP status and frontend shape.
// Server-side failures are logged; client errors are the caller's problem.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.HTTPStatus(err)

	if status >= 500 {
		logger.Error("Request failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{Error: errs.Message(err)})
}
