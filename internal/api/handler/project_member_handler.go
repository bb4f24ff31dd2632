package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type ProjectMemberHandler struct {
	memberService service.ProjectMemberService
}

func NewProjectMemberHandler(memberService service.ProjectMemberService) *ProjectMemberHandler {
	return &ProjectMemberHandler{
		memberService: memberService,
	}
}

// List 项目成员列表
// @Summary 项目成员列表
// @Tags 项目成员
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Success 200 {array} model.ProjectMember
// @Router /api/projects/{id}/members [get]
func (h *ProjectMemberHandler) List(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的项目ID")
		return
	}

	members, err := h.memberService.List(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, members)
}

// Add 添加项目成员
// @Summary 添加项目成员
// @Description 重复添加幂等成功, 成员收到站内通知与邮件
// @Tags 项目成员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Param request body dto.MemberAddRequest true "添加成员请求"
// @Success 200 {object} utils.Response
// @Router /api/projects/{id}/members [post]
func (h *ProjectMemberHandler) Add(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的项目ID")
		return
	}

	var req dto.MemberAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.memberService.Add(param.ID, req.UserID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已添加项目成员", nil)
}

// Remove 移除项目成员
// @Summary 移除项目成员
// @Description 非成员移除静默成功
// @Tags 项目成员
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Param userId path int true "用户ID"
// @Success 200 {object} utils.Response
// @Router /api/projects/{id}/members/{userId} [delete]
func (h *ProjectMemberHandler) Remove(c *gin.Context) {
	var param dto.MemberIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的路径参数")
		return
	}

	if err := h.memberService.Remove(param.ID, param.UserID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已移除项目成员", nil)
}
