package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/api/middleware"
	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type ProfileHandler struct {
	userService service.UserService
	authz       service.AuthorizationService
}

func NewProfileHandler(userService service.UserService, authz service.AuthorizationService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authz:       authz,
	}
}

// List 用户资料列表
// @Summary 用户资料列表
// @Tags 用户资料
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Profile
// @Router /api/profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.userService.ListProfiles()
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, profiles)
}

// Get 查询单个用户资料
// @Summary 查询用户资料
// @Tags 用户资料
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} model.Profile
// @Router /api/profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	profile, err := h.userService.GetProfile(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, profile)
}

// Update 更新用户资料
// @Summary 更新用户资料
// @Description 仅本人或管理员可更新
// @Tags 用户资料
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param request body dto.ProfileUpdateRequest true "更新资料请求"
// @Success 200 {object} model.Profile
// @Router /api/profiles/{id} [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	user := middleware.CurrentUser(c)
	if user.ID != param.ID && !h.authz.IsAdmin(user) {
		utils.ErrorWithCode(c, 403, "仅本人或管理员可更新资料")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	profile, err := h.userService.UpdateProfile(param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, profile)
}
