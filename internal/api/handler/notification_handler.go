package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/api/middleware"
	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List 通知列表
// @Summary 当前用户通知列表
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Notification
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	notifications, err := h.notificationService.List(user.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, notifications)
}

// Create 创建通知
// @Summary 创建通知
// @Description send_email为true时同时经由Outbox投递邮件
// @Tags 通知
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.NotificationCreateRequest true "创建通知请求"
// @Success 200 {object} model.Notification
// @Router /api/notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.NotificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	notification, err := h.notificationService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, notification)
}

// MarkRead 标记已读
// @Summary 标记通知已读
// @Description 仅能操作本人的通知
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "通知ID"
// @Success 200 {object} utils.Response
// @Router /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的通知ID")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.notificationService.MarkRead(param.ID, user.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已标记已读", nil)
}

// Delete 删除通知
// @Summary 删除通知
// @Description 仅能删除本人的通知
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "通知ID"
// @Success 200 {object} utils.Response
// @Router /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的通知ID")
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.notificationService.Delete(param.ID, user.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已删除通知", nil)
}

// ClearAll 清空通知
// @Summary 清空当前用户全部通知
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /api/notifications [delete]
func (h *NotificationHandler) ClearAll(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.notificationService.ClearAll(user.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已清空通知", nil)
}
