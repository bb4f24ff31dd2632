package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type UserRoleRepository interface {
	ListByUser(userID int64) ([]string, error)
	Add(userID int64, role string) error
	ReplaceForUser(userID int64, role string) error
}

type userRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: db}
}

func (r *userRoleRepository) ListByUser(userID int64) ([]string, error) {
	var rows []model.UserRole
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询角色授权失败", err)
	}
	roles := make([]string, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, row.Role)
	}
	return roles, nil
}

// Add 幂等插入, (user_id, role) 已存在时不报错
func (r *userRoleRepository) Add(userID int64, role string) error {
	row := model.UserRole{UserID: userID, Role: role}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加角色授权失败", err)
	}
	return nil
}

// ReplaceForUser 整体替换该用户的授权行, 唯一的角色写入口径
func (r *userRoleRepository) ReplaceForUser(userID int64, role string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "清除角色授权失败", err)
	}
	return r.Add(userID, role)
}
