package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ledger-api/pkg/utils"
)

// Context keys set by AuthMiddleware
const (
	UserIDKey          = "user_id"
	UserEmailKey       = "user_email"
	UserRolesKey       = "user_roles"
	UserPermissionsKey = "user_permissions"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.AbortWithError(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRolesKey, claims.Roles)
		c.Set(UserPermissionsKey, claims.Permissions)

		c.Next()
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// RequirePermission rejects callers whose token lacks permission. Super
// admins pass every check.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(UserRolesKey)
		if userRoles, ok := roles.([]string); ok && contains(userRoles, entity.RoleSuperAdmin) {
			c.Next()
			return
		}

		permissions, _ := c.Get(UserPermissionsKey)
		userPermissions, ok := permissions.([]string)
		if !ok {
			response.AbortWithError(c, http.StatusForbidden, "Access denied")
			return
		}
		if !contains(userPermissions, permission) {
			response.AbortWithError(c, http.StatusForbidden, "You do not have permission to perform this action")
			return
		}

		c.Next()
	}
}
