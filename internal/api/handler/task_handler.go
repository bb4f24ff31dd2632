package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"agencyflow/internal/api/middleware"
	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create 创建任务
// @Summary 创建任务
// @Description 可附带初始负责人列表, 指派会触发日志/通知/邮件
// @Tags 任务
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TaskCreateRequest true "创建任务请求"
// @Success 200 {object} model.Task
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// List 任务列表
// @Summary 任务列表
// @Description 按所属项目或负责人过滤, 负责人视角附带项目名称与品牌色
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param project_id query int false "项目ID"
// @Param assignee_id query int false "负责人用户ID"
// @Success 200 {array} model.Task
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorWithCode(c, 400, "无效的查询参数")
		return
	}

	switch {
	case query.ProjectID > 0:
		tasks, err := h.taskService.ListByProject(query.ProjectID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, tasks)
	case query.AssigneeID > 0:
		tasks, err := h.taskService.ListByAssignee(query.AssigneeID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, tasks)
	default:
		utils.ErrorWithCode(c, 400, "需要指定project_id或assignee_id")
	}
}

// Get 任务详情
// @Summary 任务详情
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Success 200 {object} model.Task
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	task, err := h.taskService.GetByID(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// Update 更新任务
// @Summary 更新任务(部分字段)
// @Description 状态/优先级变更自动写入任务日志
// @Tags 任务
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param request body dto.TaskUpdateRequest true "更新任务请求"
// @Success 200 {object} model.Task
// @Router /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	var req dto.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Update(middleware.CurrentUser(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, task)
}

// Workbench 工作台
// @Summary 当前用户工作台
// @Description 名下任务按 overdue/today/upcoming/done 分桶
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.WorkbenchResponse
// @Router /api/tasks/workbench [get]
func (h *TaskHandler) Workbench(c *gin.Context) {
	resp, err := h.taskService.Workbench(middleware.CurrentUser(c), time.Now())
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// ListAssignees 任务负责人列表
// @Summary 任务负责人列表
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Success 200 {array} model.TaskAssignee
// @Router /api/tasks/{id}/assignees [get]
func (h *TaskHandler) ListAssignees(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	assignees, err := h.taskService.ListAssignees(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, assignees)
}

// AddAssignee 添加任务负责人
// @Summary 添加任务负责人
// @Description 重复指派幂等成功, 负责人收到站内通知与邮件
// @Tags 任务
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param request body dto.AssigneeAddRequest true "添加负责人请求"
// @Success 200 {object} utils.Response
// @Router /api/tasks/{id}/assignees [post]
func (h *TaskHandler) AddAssignee(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	var req dto.AssigneeAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.taskService.AddAssignee(middleware.CurrentUser(c), param.ID, req.UserID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已添加任务负责人", nil)
}

// RemoveAssignee 移除任务负责人
// @Summary 移除任务负责人
// @Description 未指派时静默成功
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param userId path int true "用户ID"
// @Success 200 {object} utils.Response
// @Router /api/tasks/{id}/assignees/{userId} [delete]
func (h *TaskHandler) RemoveAssignee(c *gin.Context) {
	var param dto.MemberIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的路径参数")
		return
	}

	if err := h.taskService.RemoveAssignee(middleware.CurrentUser(c), param.ID, param.UserID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已移除任务负责人", nil)
}

// ListComments 任务评论列表
// @Summary 任务评论列表
// @Description 按创建时间正序
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Success 200 {array} model.TaskComment
// @Router /api/tasks/{id}/comments [get]
func (h *TaskHandler) ListComments(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	comments, err := h.taskService.ListComments(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, comments)
}

// AddComment 添加任务评论
// @Summary 添加任务评论
// @Tags 任务
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param request body dto.CommentCreateRequest true "添加评论请求"
// @Success 200 {object} model.TaskComment
// @Router /api/tasks/{id}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	comment, err := h.taskService.AddComment(middleware.CurrentUser(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, comment)
}

// ListLogs 任务日志列表
// @Summary 任务日志列表
// @Description 按创建时间倒序, 支持按动作类型过滤
// @Tags 任务
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param type query string false "动作类型过滤"
// @Success 200 {array} model.TaskLog
// @Router /api/tasks/{id}/logs [get]
func (h *TaskHandler) ListLogs(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的任务ID")
		return
	}

	var query dto.LogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorWithCode(c, 400, "无效的查询参数")
		return
	}

	logs, err := h.taskService.ListLogs(param.ID, query.Type)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, logs)
}
