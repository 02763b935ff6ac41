package middleware

import (
	"net/http"
	"strings"

	"cop_forum/internal/pkg"
	"cop_forum/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := pkg.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// 配置了 redis 时比对会话，登出/改密后旧 token 立即失效
		if redis.Enabled() {
			sessions := &redis.SessionRepository{}
			origin, err := sessions.GetToken(claims.UserID)
			if err != nil || origin != parts[1] {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session revoked"})
				c.Abort()
				return
			}
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
