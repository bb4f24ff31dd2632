package repository

import (
	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type NotificationRepository interface {
	ListByUser(userID int64) ([]*model.Notification, error)
	Create(notification *model.Notification) error
	MarkRead(id, userID int64) error
	Delete(id, userID int64) error
	DeleteAllByUser(userID int64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByUser(userID int64) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询通知失败", err)
	}
	return notifications, nil
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建通知失败", err)
	}
	return nil
}

// MarkRead 仅允许本人操作, 条件同时限定user_id
func (r *notificationRepository) MarkRead(id, userID int64) error {
	err := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "标记通知已读失败", err)
	}
	return nil
}

func (r *notificationRepository) Delete(id, userID int64) error {
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Notification{}).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除通知失败", err)
	}
	return nil
}

func (r *notificationRepository) DeleteAllByUser(userID int64) error {
	err := r.db.Where("user_id = ?", userID).Delete(&model.Notification{}).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "清空通知失败", err)
	}
	return nil
}
