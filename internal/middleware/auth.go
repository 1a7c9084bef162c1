package middleware

import (
	"net/http"
	"strings"

	"raffle-manager/internal/model"
	"raffle-manager/internal/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth verifies the Bearer token and stores the caller's identity in the
// request context. Requests without a valid token are rejected with 401.
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header format"})
			return
		}

		identity, err := auth.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity stored by Auth, or the zero value when
// the route is unauthenticated.
func GetIdentity(c *gin.Context) model.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return model.Identity{}
	}
	identity, ok := value.(model.Identity)
	if !ok {
		return model.Identity{}
	}
	return identity
}
