package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-calendar-sync/internal/pkg/cookie"
	"booking-calendar-sync/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "admin_username"

type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAdmin accepts the session cookie or a bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminSession(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxAdminKey, claims.Username)
		c.Next()
	}
}

func GetAdmin(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
