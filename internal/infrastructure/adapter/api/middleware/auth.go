package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/dto"
)

// AdminKey is the context key the authorized admin is stored under.
const AdminKey = "admin_user"

// AuthTokenHeader carries the session token issued by the auth endpoint.
const AuthTokenHeader = "X-Auth-Token"

// AdminAuth resolves the session token to a user and requires the admin
// flag before any admin action runs. Identity comes from the session, never
// from a client-supplied id.
func AdminAuth(adminUseCase usecase.AdminUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthTokenHeader)

		admin, err := adminUseCase.Authorize(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errs.HTTPStatus(err), dto.ErrorResponse{
				Error: errs.Message(err),
			})
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}

// AdminFromContext returns the admin the gate stored for this request
func AdminFromContext(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(AdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*entity.User)
	return admin, ok
}
