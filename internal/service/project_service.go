package service

import (
	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/pkg/auth"
	"agencyflow/internal/repository"
	pkgErrors "agencyflow/pkg/errors"
)

type ProjectService interface {
	Create(req *dto.ProjectCreateRequest) (*model.Project, error)
	List(user *dto.UserInfo) ([]*model.Project, error)
	GetByID(id int64) (*model.Project, error)
	Update(id int64, req *dto.ProjectUpdateRequest) (*model.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	authz       AuthorizationService
}

func NewProjectService(projectRepo repository.ProjectRepository, authz AuthorizationService) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		authz:       authz,
	}
}

func (s *projectService) Create(req *dto.ProjectCreateRequest) (*model.Project, error) {
	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.BrandColor != "" {
		project.BrandColor = req.BrandColor
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// List 按能力过滤: 具备全量可见能力的返回全部, 其余仅返回其作为成员的项目
func (s *projectService) List(user *dto.UserInfo) ([]*model.Project, error) {
	if s.authz.Can(user, auth.PermProjectViewAll) {
		return s.projectRepo.ListAll()
	}
	return s.projectRepo.ListByMember(user.ID)
}

func (s *projectService) GetByID(id int64) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// Update 部分更新, 未提交的字段保持原值
func (s *projectService) Update(id int64, req *dto.ProjectUpdateRequest) (*model.Project, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.BrandColor != nil {
		fields["brand_color"] = *req.BrandColor
	}

	if len(fields) > 0 {
		if err := s.projectRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	return s.projectRepo.FindByID(id)
}
