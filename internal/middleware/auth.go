package middleware

import (
	"strings"

	"ajira_backend/internal/auth"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/models"
	"ajira_backend/pkg/apperrors"
	"ajira_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer access token.
func AuthMiddleware(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication credentials were not provided"))
			return
		}
		claims, err := tm.ParseToken(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is sent and lets anonymous requests through.
// A malformed or expired token is still rejected.
func OptionalAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := tm.ParseToken(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication credentials were not provided"))
			return
		}
		if !allowed[role] {
			apperrors.HandleError(c, apperrors.ErrInvalidUserRole)
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(contextkeys.UserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(contextkeys.UserIDKey, claims.UserID)
	c.Set(contextkeys.UserRoleKey, claims.Role)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
}
