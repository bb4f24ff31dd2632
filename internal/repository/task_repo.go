package repository

import (
	"time"

	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type TaskRepository interface {
	Create(task *model.Task) error
	FindByID(id int64) (*model.Task, error)
	ListByProject(projectID int64) ([]*model.Task, error)
	ListByAssignee(userID int64) ([]*model.Task, error)
	ListDueBefore(deadline time.Time) ([]*model.Task, error)
	Update(id int64, fields map[string]interface{}) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *model.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建任务失败", err)
	}
	return nil
}

func (r *taskRepository) FindByID(id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询任务失败", err)
	}
	return &task, nil
}

func (r *taskRepository) ListByProject(projectID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目任务失败", err)
	}
	return tasks, nil
}

// ListByAssignee 返回该用户名下的任务, 预加载项目用于展示名称与颜色
func (r *taskRepository) ListByAssignee(userID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.
		Joins("INNER JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Where("task_assignees.user_id = ?", userID).
		Preload("Project").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询负责任务失败", err)
	}
	return tasks, nil
}

// ListDueBefore 未完成且到期时间早于deadline的任务(到期提醒用)
func (r *taskRepository) ListDueBefore(deadline time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.
		Where("status <> ? AND due_date IS NOT NULL AND due_date < ?", "Done", deadline).
		Preload("Project").
		Find(&tasks).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询到期任务失败", err)
	}
	return tasks, nil
}

// Update 按提交的字段集合做部分更新, 并发PATCH按列级后写覆盖
func (r *taskRepository) Update(id int64, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新任务失败", err)
	}
	return nil
}
