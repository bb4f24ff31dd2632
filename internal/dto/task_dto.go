package dto

import (
	"time"

	"agencyflow/internal/model"
)

// TaskCreateRequest 创建任务请求
type TaskCreateRequest struct {
	ProjectID   int64      `json:"project_id" binding:"required,min=1"`
	Title       string     `json:"title" binding:"required,max=191"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof='P1-High' 'P2-Medium' 'P3-Low'"`
	Status      string     `json:"status" binding:"omitempty,oneof=Todo 'In Progress' 'Internal Review' 'Pending Client Review' Done"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeIDs []int64    `json:"assignee_ids"`
}

// TaskUpdateRequest 更新任务请求(部分字段, 所属项目不可变更)
type TaskUpdateRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=191"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof='P1-High' 'P2-Medium' 'P3-Low'"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Todo 'In Progress' 'Internal Review' 'Pending Client Review' Done"`
	DueDate     *time.Time `json:"due_date"`
	IsBlocked   *bool      `json:"is_blocked"`
}

// TaskListQuery 任务列表查询参数
type TaskListQuery struct {
	ProjectID  int64 `form:"project_id"`
	AssigneeID int64 `form:"assignee_id"`
}

// TaskWithProject 任务附带所属项目展示信息(负责人视角列表)
type TaskWithProject struct {
	model.Task
	ProjectName  string `json:"project_name"`
	ProjectColor string `json:"project_color"`
}

// WorkbenchResponse 工作台分桶: 每个任务只会出现在一个桶里
type WorkbenchResponse struct {
	Overdue  []TaskWithProject `json:"overdue"`
	Today    []TaskWithProject `json:"today"`
	Upcoming []TaskWithProject `json:"upcoming"`
	Done     []TaskWithProject `json:"done"`
}

// AssigneeAddRequest 添加任务负责人请求
type AssigneeAddRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}

// CommentCreateRequest 添加任务评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required"`
}

// LogListQuery 任务日志查询参数
type LogListQuery struct {
	Type string `form:"type"`
}
