package repository

import (
	"time"

	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindByToken(token string) (*model.Session, error)
	DeleteByToken(token string) error
	DeleteByUser(userID int64) error
	DeleteExpired(before time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建会话失败", err)
	}
	return nil
}

func (r *sessionRepository) FindByToken(token string) (*model.Session, error) {
	var session model.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会话失败", err)
	}
	return &session, nil
}

// DeleteByToken 只删除该Token对应的一行, 不存在时静默成功
func (r *sessionRepository) DeleteByToken(token string) error {
	if err := r.db.Where("token = ?", token).Delete(&model.Session{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除会话失败", err)
	}
	return nil
}

// DeleteByUser 删除该用户全部会话(管理员重置密码时吊销所有Token)
func (r *sessionRepository) DeleteByUser(userID int64) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.Session{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除用户会话失败", err)
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&model.Session{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "清理过期会话失败", result.Error)
	}
	return result.RowsAffected, nil
}
