package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gogevgelija/gogevgelija-backend/config"
	"github.com/gogevgelija/gogevgelija-backend/internal/auth"
)

// OptionalAuth resolves a bearer token when one is supplied and stores the
// identity in the request context. Requests without a usable token continue
// anonymously — the join/unjoin endpoints rely on that.
func OptionalAuth(cfg *config.Config, authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTAccessSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.Next()
			return
		}

		user, err := authSvc.GetUserByID(uint(userIDFloat))
		if err != nil {
			c.Next()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// RequireAuth gates a route group on the identity resolved by OptionalAuth.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(c *gin.Context) (auth.User, bool) {
	raw, exists := c.Get("user")
	if !exists {
		return auth.User{}, false
	}
	user, ok := raw.(auth.User)
	return user, ok
}

// UserIDFromContext returns the authenticated user's id, or nil when anonymous.
func UserIDFromContext(c *gin.Context) *uint {
	raw, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := raw.(uint)
	if !ok {
		return nil
	}
	return &id
}
