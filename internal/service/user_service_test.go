package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

func TestUserService_AdminCreate(t *testing.T) {
	t.Run("创建成功_直接激活并要求改密", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		profileRepo := new(MockProfileRepository)
		roleRepo := new(MockUserRoleRepository)

		userRepo.On("FindByEmail", "bob@example.com").Return(nil, pkgErrors.ErrRecordNotFound)
		userRepo.On("Create", mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
			args.Get(0).(*model.User).ID = 8
		}).Return(nil)
		profileRepo.On("Create", mock.MatchedBy(func(p *model.Profile) bool {
			return p.ID == 8 && p.IsActive && p.ForcePasswordChange && p.Role == constants.RoleManager
		})).Return(nil)
		roleRepo.On("Add", int64(8), constants.RoleManager).Return(nil)

		svc := NewUserService(userRepo, profileRepo, roleRepo, new(MockSessionRepository), zap.NewNop())
		profile, err := svc.AdminCreate(&dto.AdminCreateUserRequest{
			Email:    "bob@example.com",
			Password: "password123",
			FullName: "Bob",
			Role:     constants.RoleManager,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(8), profile.ID)
		roleRepo.AssertExpectations(t)
	})

	t.Run("未指定角色_默认staff", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		profileRepo := new(MockProfileRepository)
		roleRepo := new(MockUserRoleRepository)

		userRepo.On("FindByEmail", "carol@example.com").Return(nil, pkgErrors.ErrRecordNotFound)
		userRepo.On("Create", mock.Anything).Return(nil)
		profileRepo.On("Create", mock.MatchedBy(func(p *model.Profile) bool {
			return p.Role == constants.RoleStaff
		})).Return(nil)
		roleRepo.On("Add", mock.Anything, constants.RoleStaff).Return(nil)

		svc := NewUserService(userRepo, profileRepo, roleRepo, new(MockSessionRepository), zap.NewNop())
		_, err := svc.AdminCreate(&dto.AdminCreateUserRequest{
			Email:    "carol@example.com",
			Password: "password123",
			FullName: "Carol",
		})
		assert.NoError(t, err)
	})

	t.Run("邮箱已占用", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", "taken@example.com").Return(&model.User{}, nil)

		svc := NewUserService(userRepo, new(MockProfileRepository), new(MockUserRoleRepository), new(MockSessionRepository), zap.NewNop())
		_, err := svc.AdminCreate(&dto.AdminCreateUserRequest{Email: "taken@example.com", Password: "password123", FullName: "Dup"})
		assert.Equal(t, pkgErrors.ErrEmailTaken, err)
	})
}

func TestUserService_ResetPassword吊销全部会话(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	sessionRepo := new(MockSessionRepository)

	userRepo.On("FindByID", int64(8)).Return(&model.User{BaseModel: model.BaseModel{ID: 8}}, nil)
	userRepo.On("UpdatePassword", int64(8), mock.AnythingOfType("string")).Return(nil)
	profileRepo.On("Update", int64(8), map[string]interface{}{"force_password_change": true}).Return(nil)
	sessionRepo.On("DeleteByUser", int64(8)).Return(nil)

	svc := NewUserService(userRepo, profileRepo, new(MockUserRoleRepository), sessionRepo, zap.NewNop())
	err := svc.ResetPassword(&dto.ResetPasswordRequest{UserID: 8, NewPassword: "new-password"})

	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestUserService_UpdateRole同步授权表(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	roleRepo := new(MockUserRoleRepository)

	profileRepo.On("FindByID", int64(8)).Return(&model.Profile{ID: 8, Role: constants.RoleStaff}, nil)
	profileRepo.On("Update", int64(8), map[string]interface{}{"role": constants.RoleAdmin}).Return(nil)
	roleRepo.On("ReplaceForUser", int64(8), constants.RoleAdmin).Return(nil)

	svc := NewUserService(new(MockUserRepository), profileRepo, roleRepo, new(MockSessionRepository), zap.NewNop())
	assert.NoError(t, svc.UpdateRole(8, constants.RoleAdmin))
	roleRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile(t *testing.T) {
	profile := &model.Profile{ID: 8, FullName: "Bob"}

	t.Run("仅更新提交字段", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("FindByID", int64(8)).Return(profile, nil)
		profileRepo.On("Update", int64(8), map[string]interface{}{"full_name": "Bobby"}).Return(nil)

		svc := NewUserService(new(MockUserRepository), profileRepo, new(MockUserRoleRepository), new(MockSessionRepository), zap.NewNop())
		name := "Bobby"
		_, err := svc.UpdateProfile(8, &dto.ProfileUpdateRequest{FullName: &name})
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("空请求不触发更新", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("FindByID", int64(8)).Return(profile, nil)

		svc := NewUserService(new(MockUserRepository), profileRepo, new(MockUserRoleRepository), new(MockSessionRepository), zap.NewNop())
		_, err := svc.UpdateProfile(8, &dto.ProfileUpdateRequest{})
		assert.NoError(t, err)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("资料不存在", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("FindByID", int64(99)).Return(nil, pkgErrors.ErrRecordNotFound)

		svc := NewUserService(new(MockUserRepository), profileRepo, new(MockUserRoleRepository), new(MockSessionRepository), zap.NewNop())
		_, err := svc.GetProfile(99)
		assert.Equal(t, pkgErrors.ErrProfileNotFound, err)
	})
}
