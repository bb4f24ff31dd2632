package handler

import (
	"github.com/gin-gonic/gin"

	"agencyflow/internal/api/middleware"
	"agencyflow/internal/dto"
	"agencyflow/internal/service"
	"agencyflow/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
	taskService    service.TaskService
}

func NewProjectHandler(projectService service.ProjectService, taskService service.TaskService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
	}
}

// Create 创建项目
// @Summary 创建项目
// @Tags 项目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ProjectCreateRequest true "创建项目请求"
// @Success 200 {object} model.Project
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// List 项目列表
// @Summary 项目列表
// @Description 管理员/经理返回全部项目, 其余用户仅返回其作为成员的项目
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(middleware.CurrentUser(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, projects)
}

// Get 项目详情
// @Summary 项目详情
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Success 200 {object} model.Project
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的项目ID")
		return
	}

	project, err := h.projectService.GetByID(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// Update 更新项目
// @Summary 更新项目(部分字段)
// @Tags 项目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Param request body dto.ProjectUpdateRequest true "更新项目请求"
// @Success 200 {object} model.Project
// @Router /api/projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的项目ID")
		return
	}

	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// ListTasks 项目任务列表
// @Summary 项目任务列表
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目ID"
// @Success 200 {array} model.Task
// @Router /api/projects/{id}/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorWithCode(c, 400, "无效的项目ID")
		return
	}

	tasks, err := h.taskService.ListByProject(param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tasks)
}
