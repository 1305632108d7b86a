package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// Gin context key for the caller's current role.
const UserRoleContextKey = "userRole"

// findProfile is swapped out in tests.
var findProfile func(id uuid.UUID) (*db.Profile, error) = queries.FindProfileByID

// RequireRole gates a route group behind a minimum role. The role is read
// from the profiles table on every request rather than from the token claim,
// so an admin changing a user's role takes effect on that user's next call.
func RequireRole(required gita.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := GetUserClaimsFromContext(c)
		if !exists {
			utils.ResponseWithError(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		profile, err := findProfile(claims.UserID)
		if err != nil {
			utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load user profile", nil)
			c.Abort()
			return
		}
		if profile == nil {
			log.Warnf("RequireRole: user %s has no profile row.", claims.UserID.String())
			utils.ResponseWithError(c, http.StatusForbidden, "Access denied. You don't have permission to access this resource.", nil)
			c.Abort()
			return
		}

		role, err := gita.ParseRole(profile.Role)
		if err != nil || !gita.CanAccess(role, required) {
			utils.ResponseWithError(c, http.StatusForbidden, "Access denied. You don't have permission to access this resource.", nil)
			c.Abort()
			return
		}

		c.Set(UserRoleContextKey, role)
		c.Next()
	}
}

// GetUserRoleFromContext returns the role RequireRole resolved for this
// request.
func GetUserRoleFromContext(c *gin.Context) (gita.Role, bool) {
	v, exists := c.Get(UserRoleContextKey)
	if !exists {
		return "", false
	}
	role, ok := v.(gita.Role)
	return role, ok
}
