package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warcat/internal/auth"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserID   = "userId"
	CtxRoleType = "role_type"
)

// AuthMiddleware validates a Bearer session token and stores the
// caller's identity on the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusTxt": "error", "message": "Missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusTxt": "error", "message": "Invalid authorization header"})
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusTxt": "error", "message": "Invalid or expired token"})
			return
		}
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRoleType, claims.RoleType)
		c.Next()
	}
}
