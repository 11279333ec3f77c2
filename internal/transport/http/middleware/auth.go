package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/auth"
	"food-order-api/internal/domain"
	"food-order-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyEmail  = "email"
	KeyRole   = "role"
	KeyUser   = "user"
)

// Auth Bearer token 校验 + 回查用户。token 合法但账号已不存在（删号后的旧 token）
// 同样按 401 处理
func Auth(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, "no token provided")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "not authorized, token failed")
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, "server error")
			return
		}
		if u == nil {
			response.Abort(c, http.StatusUnauthorized, "not authorized, token failed")
			return
		}
		c.Set(KeyUserID, u.ID)
		c.Set(KeyEmail, u.Email)
		c.Set(KeyRole, u.Role)
		c.Set(KeyUser, u)
		c.Next()
	}
}

// RequireRole 在 Auth 之后挂；身份合法但角色不够 → 403
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyRole) != role {
			msg := "forbidden"
			if role == domain.RoleAdmin {
				msg = "admin only route"
			}
			response.Abort(c, http.StatusForbidden, msg)
			return
		}
		c.Next()
	}
}

// CurrentUser 取 Auth 放进上下文的用户
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(KeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
