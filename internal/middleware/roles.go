package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

// RequireRoles gates a route group on the caller's role. The router wires one
// of these per group, forming the route→role table evaluated before dispatch.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				types.NewError(http.StatusUnauthorized, "authentication required", nil))
			return
		}
		if !allowed[identity.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				types.NewError(http.StatusForbidden, "not allowed", nil))
			return
		}
		c.Next()
	}
}
