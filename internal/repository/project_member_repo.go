package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type ProjectMemberRepository interface {
	ListByProject(projectID int64) ([]*model.ProjectMember, error)
	Add(member *model.ProjectMember) error
	Remove(projectID, userID int64) error
	Exists(projectID, userID int64) (bool, error)
}

type projectMemberRepository struct {
	db *gorm.DB
}

func NewProjectMemberRepository(db *gorm.DB) ProjectMemberRepository {
	return &projectMemberRepository{db: db}
}

func (r *projectMemberRepository) ListByProject(projectID int64) ([]*model.ProjectMember, error) {
	var members []*model.ProjectMember
	err := r.db.Where("project_id = ?", projectID).
		Preload("Profile").
		Order("created_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目成员失败", err)
	}
	return members, nil
}

// Add 幂等插入, 重复添加同一成员不报错不产生新行
func (r *projectMemberRepository) Add(member *model.ProjectMember) error {
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加项目成员失败", err)
	}
	return nil
}

// Remove 成员不存在时静默成功
func (r *projectMemberRepository) Remove(projectID, userID int64) error {
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{}).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "移除项目成员失败", err)
	}
	return nil
}

func (r *projectMemberRepository) Exists(projectID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目成员失败", err)
	}
	return count > 0, nil
}
