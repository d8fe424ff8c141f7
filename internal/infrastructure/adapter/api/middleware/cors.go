package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS header values served on every response. The portal frontend is
// served from a different origin.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, X-Auth-Token"
	corsMaxAge       = "86400"
)

// CORS sets cross-origin headers and short-circuits preflight requests
// with an empty 200 before any body parsing or database work.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Max-Age", corsMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
