package repository

import (
	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type TaskCommentRepository interface {
	ListByTask(taskID int64) ([]*model.TaskComment, error)
	Create(comment *model.TaskComment) error
}

type taskCommentRepository struct {
	db *gorm.DB
}

func NewTaskCommentRepository(db *gorm.DB) TaskCommentRepository {
	return &taskCommentRepository{db: db}
}

// ListByTask 评论按创建时间正序(其余列表均为倒序)
func (r *taskCommentRepository) ListByTask(taskID int64) ([]*model.TaskComment, error) {
	var comments []*model.TaskComment
	err := r.db.Where("task_id = ?", taskID).
		Preload("Profile").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询任务评论失败", err)
	}
	return comments, nil
}

func (r *taskCommentRepository) Create(comment *model.TaskComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建任务评论失败", err)
	}
	return nil
}
