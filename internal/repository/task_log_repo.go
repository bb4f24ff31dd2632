package repository

import (
	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type TaskLogRepository interface {
	ListByTask(taskID int64, actionType string) ([]*model.TaskLog, error)
	Create(log *model.TaskLog) error
}

type taskLogRepository struct {
	db *gorm.DB
}

func NewTaskLogRepository(db *gorm.DB) TaskLogRepository {
	return &taskLogRepository{db: db}
}

// ListByTask 按任务倒序返回日志, actionType非空时按动作类型过滤
func (r *taskLogRepository) ListByTask(taskID int64, actionType string) ([]*model.TaskLog, error) {
	query := r.db.Where("task_id = ?", taskID)
	if actionType != "" {
		query = query.Where("action_type = ?", actionType)
	}

	var logs []*model.TaskLog
	if err := query.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询任务日志失败", err)
	}
	return logs, nil
}

// Create 日志只追加, 没有更新/删除入口
func (r *taskLogRepository) Create(log *model.TaskLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "写入任务日志失败", err)
	}
	return nil
}
