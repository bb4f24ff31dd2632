package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

// AdminHandler 管理员用户管理
type AdminHandler struct {
	userService service.UserService
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
	}
}

// CreateUser 创建用户
// @Summary 管理员创建用户
// @Description 账号直接激活, 首次登录要求改密
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AdminCreateUserRequest true "创建用户请求"
// @Success 200 {object} model.Profile
// @Router /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	profile, err := h.userService.AdminCreate(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, profile)
}

// ResetPassword 重置用户密码
// @Summary 管理员重置用户密码
// @Description 重置后吊销该用户全部会话
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ResetPasswordRequest true "重置密码请求"
// @Success 200 {object} utils.Response
// @Router /api/admin/reset-password [post]
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.userService.ResetPassword(&req); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "密码已重置", nil)
}

// ActivateUser 启用/停用用户
// @Summary 启用或停用用户
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param request body dto.ActivateUserRequest true "启用/停用请求"
// @Success 200 {object} utils.Response
// @Router /api/admin/users/{id}/activate [patch]
func (h *AdminHandler) ActivateUser(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	var req dto.ActivateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.userService.SetActive(param.ID, *req.IsActive); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已更新账号状态", nil)
}

// UpdateRole 调整用户角色
// @Summary 调整用户角色
// @Description 同步更新档案主角色与授权表
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param request body dto.UpdateRoleRequest true "调整角色请求"
// @Success 200 {object} utils.Response
// @Router /api/admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.userService.UpdateRole(param.ID, req.Role); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已更新用户角色", nil)
}
