package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/api/middleware"
	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 注册
// @Summary 自助注册
// @Description 新账号为staff角色且未激活, 需管理员激活后方可登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 200 {object} dto.RegisterResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// Login 登录
// @Summary 用户登录
// @Description 邮箱+密码登录, 签发7天有效期Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} dto.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// Logout 登出
// @Summary 登出当前会话
// @Description 删除会话行, 重复登出同样成功
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.CurrentToken(c)
	if err := h.authService.Logout(token); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已登出", nil)
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserInfo
// @Router /api/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	// 由认证中间件解析写入context
	utils.Success(c, middleware.CurrentUser(c))
}

// ChangePassword 修改密码
// @Summary 修改当前用户密码
// @Description 校验当前密码后更新, 并清除强制改密标记
// @Tags 认证
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ChangePasswordRequest true "修改密码请求"
// @Success 200 {object} utils.Response
// @Router /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.ChangePassword(user.ID, &req); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "密码已更新", nil)
}
