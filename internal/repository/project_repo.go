package repository

import (
	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	ListAll() ([]*model.Project, error)
	ListByMember(userID int64) ([]*model.Project, error)
	Update(id int64, fields map[string]interface{}) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) ListAll() ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目列表失败", err)
	}
	return projects, nil
}

// ListByMember 仅返回该用户作为成员的项目
func (r *projectRepository) ListByMember(userID int64) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.
		Joins("INNER JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询成员项目失败", err)
	}
	return projects, nil
}

// Update 按提交的字段集合做部分更新
func (r *projectRepository) Update(id int64, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目失败", err)
	}
	return nil
}
