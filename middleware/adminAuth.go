package middleware

import (
	"net/http"
	"strings"

	"coworking/models"
	"coworking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthAdminMiddleware accepts only HS256 bearer tokens signed with secret
// and carrying role=admin.
func JWTAuthAdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			zap.L().Warn("Admin token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized admin access"})
			return
		}
		if role, _ := claims["role"].(string); role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Error: "Admin role required"})
			return
		}

		sub, _ := claims["sub"].(string)
		c.Set("adminID", sub)
		c.Set("isAdmin", true)
		c.Next()
	}
}
