package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// RequireRole lets the request through only when Authenticate stored one of
// the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
			return
		}

		role := c.GetString(ContextUserRole)
		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions",
				map[string]interface{}{"required_roles": roles, "user_role": role}))
			return
		}
		c.Next()
	}
}
