package middleware

import (
	"Brightline/internal/pkg/response"
	"Brightline/internal/pkg/security"
	"Brightline/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TokenKey gin.Context 中原始 Token 的 Key，登出时使用
	TokenKey = "token"
	// UserKey gin.Context 中当前用户的 Key
	UserKey = "user"
)

// AuthMiddleware 验证 Bearer Token 并将后台用户注入 Context
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.Verify(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(TokenKey, token)
		c.Set(UserKey, user)
		c.Request = c.Request.WithContext(security.WithUser(c.Request.Context(), user))

		c.Next()
	}
}
