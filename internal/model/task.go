package model

import "time"

const TaskTableName = "tasks"
const TaskAssigneeTableName = "task_assignees"
const TaskCommentTableName = "task_comments"
const TaskLogTableName = "task_logs"

// Task 任务模型, 所属项目创建后不可变更
type Task struct {
	BaseModel
	ProjectID   int64      `gorm:"not null;index" json:"project_id"`
	CreatedBy   *int64     `json:"created_by"`
	Title       string     `gorm:"size:191;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"size:20;not null;default:P2-Medium" json:"priority"`
	Status      string     `gorm:"size:30;not null;default:Todo" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	IsBlocked   bool       `gorm:"not null;default:false" json:"is_blocked"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Task) TableName() string {
	return TaskTableName
}

// TaskAssignee 任务负责人, (task_id, user_id) 唯一
type TaskAssignee struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    int64     `gorm:"not null;uniqueIndex:idx_task_user" json:"task_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_task_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (TaskAssignee) TableName() string {
	return TaskAssigneeTableName
}

// TaskComment 任务评论, 按创建时间正序展示
type TaskComment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    int64     `gorm:"not null;index" json:"task_id"`
	UserID    int64     `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (TaskComment) TableName() string {
	return TaskCommentTableName
}

// TaskLog 任务操作日志, 只追加不修改不删除
// Details 冗余记录相关用户的展示名, 使日志不受后续改名/移除影响
type TaskLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID     int64     `gorm:"not null;index" json:"task_id"`
	UserID     int64     `gorm:"not null" json:"user_id"`
	ActionType string    `gorm:"size:30;not null;index" json:"action_type"`
	OldValue   *string   `gorm:"type:text" json:"old_value"`
	NewValue   *string   `gorm:"type:text" json:"new_value"`
	Details    *string   `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (TaskLog) TableName() string {
	return TaskLogTableName
}
