package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fruit-order-service/stores"
	"fruit-order-service/utils"
)

// AuthMiddleware 校验 Bearer token，并且必须匹配当前活跃会话。
// 会话被替换或登出后，旧 token 一律拒绝。
func AuthMiddleware(auth *stores.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			return
		}

		userID, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, ok := auth.User()
		if !ok || user.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
