package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"agencyflow/internal/dto"
	"agencyflow/internal/pkg/auth"
	"agencyflow/internal/service"
	"agencyflow/pkg/constants"
	"agencyflow/pkg/utils"
)

// IdentityMiddleware 身份解析中间件
// Token缺失或无效时不拦截请求, 仅以匿名身份继续, 是否放行由后续中间件决定
func IdentityMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		userInfo, err := authService.ResolveIdentity(token)
		if err != nil {
			// 解析失败按匿名处理
			c.Next()
			return
		}

		c.Set(constants.ContextUserKey, userInfo)
		c.Set(constants.ContextTokenKey, token)
		c.Next()
	}
}

// RequireAuth 要求已认证身份
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			utils.ErrorWithCode(c, 401, "未认证")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission 要求指定能力, 未认证401, 已认证无能力403
func RequirePermission(authz service.AuthorizationService, perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.ErrorWithCode(c, 401, "未认证")
			c.Abort()
			return
		}
		if !authz.Can(user, perm) {
			utils.ErrorWithCode(c, 403, "无权限执行该操作")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 读取认证中间件写入的用户信息, 匿名时返回nil
func CurrentUser(c *gin.Context) *dto.UserInfo {
	value, exists := c.Get(constants.ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*dto.UserInfo)
	if !ok {
		return nil
	}
	return user
}

// CurrentToken 读取当前请求的Token, 匿名时返回空串
func CurrentToken(c *gin.Context) string {
	return c.GetString(constants.ContextTokenKey)
}
