package middleware

import (
	"Lumina/internal/pkg/response"
	"Lumina/internal/pkg/security"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
// 失败场景区分：令牌缺失、令牌无效或过期、载荷缺少主体、主体不是数字
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			response.Fail(c, response.Unauthorized, "未携带令牌")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "令牌无效或已过期")
			c.Abort()
			return
		}

		if claims.Subject == "" {
			response.Fail(c, response.Unauthorized, "令牌载荷无效")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			response.Fail(c, response.Unauthorized, "用户ID无效")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
