package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/pkg/constants"
)

func TestProjectService_List按能力过滤(t *testing.T) {
	all := []*model.Project{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Alpha"},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Beta"},
	}
	mine := all[:1]

	tests := []struct {
		name     string
		user     *dto.UserInfo
		expected []*model.Project
	}{
		{
			name:     "管理员返回全部项目",
			user:     &dto.UserInfo{ID: 5, Roles: []string{constants.RoleAdmin}},
			expected: all,
		},
		{
			name:     "经理返回全部项目",
			user:     &dto.UserInfo{ID: 5, Roles: []string{constants.RoleManager}},
			expected: all,
		},
		{
			name:     "staff仅返回其作为成员的项目",
			user:     &dto.UserInfo{ID: 5, Roles: []string{constants.RoleStaff}},
			expected: mine,
		},
		{
			name: "无授权行回退档案角色",
			user: &dto.UserInfo{
				ID:      5,
				Roles:   []string{},
				Profile: &model.Profile{ID: 5, Role: constants.RoleStaff},
			},
			expected: mine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectRepo := new(MockProjectRepository)
			projectRepo.On("ListAll").Return(all, nil).Maybe()
			projectRepo.On("ListByMember", int64(5)).Return(mine, nil).Maybe()

			svc := NewProjectService(projectRepo, NewAuthorizationService())
			projects, err := svc.List(tt.user)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, projects)
		})
	}
}

func TestProjectService_Update部分字段(t *testing.T) {
	project := &model.Project{BaseModel: model.BaseModel{ID: 1}, Name: "Alpha", Status: constants.ProjectStatusActive}

	projectRepo := new(MockProjectRepository)
	projectRepo.On("FindByID", int64(1)).Return(project, nil)
	projectRepo.On("Update", int64(1), map[string]interface{}{
		"status": constants.ProjectStatusArchived,
	}).Return(nil)

	svc := NewProjectService(projectRepo, NewAuthorizationService())
	status := constants.ProjectStatusArchived
	_, err := svc.Update(1, &dto.ProjectUpdateRequest{Status: &status})

	assert.NoError(t, err)
	projectRepo.AssertExpectations(t)
}
