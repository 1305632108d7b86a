package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/services"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// Gin context key for storing user claims.
const UserClaimsContextKey = "userClaims"

// AuthMiddleware authenticates requests using a bearer JWT.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ResponseWithError(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.ResponseWithError(c, http.StatusUnauthorized, "Invalid Authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(secret, parts[1])
		if err != nil {
			log.Debugf("AuthMiddleware: invalid or expired token: %v", err)
			utils.ResponseWithError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(UserClaimsContextKey, claims)
		c.Next()
	}
}

// GetUserClaimsFromContext extracts user claims from the Gin context.
func GetUserClaimsFromContext(c *gin.Context) (*services.Claims, bool) {
	claims, exists := c.Get(UserClaimsContextKey)
	if !exists {
		return nil, false
	}
	userClaims, ok := claims.(*services.Claims)
	if !ok {
		return nil, false
	}
	return userClaims, true
}
