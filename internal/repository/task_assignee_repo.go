package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type TaskAssigneeRepository interface {
	ListByTask(taskID int64) ([]*model.TaskAssignee, error)
	Add(assignee *model.TaskAssignee) error
	Remove(taskID, userID int64) error
}

type taskAssigneeRepository struct {
	db *gorm.DB
}

func NewTaskAssigneeRepository(db *gorm.DB) TaskAssigneeRepository {
	return &taskAssigneeRepository{db: db}
}

func (r *taskAssigneeRepository) ListByTask(taskID int64) ([]*model.TaskAssignee, error) {
	var assignees []*model.TaskAssignee
	err := r.db.Where("task_id = ?", taskID).
		Preload("Profile").
		Order("created_at DESC").
		Find(&assignees).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询任务负责人失败", err)
	}
	return assignees, nil
}

// Add 幂等插入, 重复指派不报错
func (r *taskAssigneeRepository) Add(assignee *model.TaskAssignee) error {
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(assignee).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加任务负责人失败", err)
	}
	return nil
}

// Remove 未指派时静默成功
func (r *taskAssigneeRepository) Remove(taskID, userID int64) error {
	err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskAssignee{}).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "移除任务负责人失败", err)
	}
	return nil
}
