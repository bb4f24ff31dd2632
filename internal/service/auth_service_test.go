package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/pkg/config"
	"agencyflow/internal/pkg/crypto"
	"agencyflow/internal/pkg/jwt"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

func init() {
	// jwt包从全局配置读取签名密钥
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				Secret:          "test-secret",
				TokenExpireDays: 7,
			},
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		setupMock     func(*MockUserRepository, *MockProfileRepository)
		expectedError error
	}{
		{
			name: "注册成功_新账号未激活",
			req:  &dto.RegisterRequest{Email: "new@example.com", Password: "password123", FullName: "New User"},
			setupMock: func(userRepo *MockUserRepository, profileRepo *MockProfileRepository) {
				userRepo.On("FindByEmail", "new@example.com").Return(nil, pkgErrors.ErrRecordNotFound)
				userRepo.On("Create", mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(0).(*model.User).ID = 7
				}).Return(nil)
				profileRepo.On("Create", mock.MatchedBy(func(p *model.Profile) bool {
					return p.ID == 7 && p.Role == constants.RoleStaff && !p.IsActive
				})).Return(nil)
			},
		},
		{
			name: "邮箱已占用",
			req:  &dto.RegisterRequest{Email: "taken@example.com", Password: "password123", FullName: "Dup"},
			setupMock: func(userRepo *MockUserRepository, profileRepo *MockProfileRepository) {
				userRepo.On("FindByEmail", "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: pkgErrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			profileRepo := new(MockProfileRepository)
			tt.setupMock(userRepo, profileRepo)

			svc := NewAuthService(userRepo, new(MockSessionRepository), profileRepo, new(MockUserRoleRepository))
			resp, err := svc.Register(tt.req)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), resp.UserID)
			}

			userRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := crypto.HashPassword("password123")

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		setupMock     func(*MockUserRepository, *MockSessionRepository, *MockProfileRepository, *MockUserRoleRepository)
		expectedError error
	}{
		{
			name: "登录成功_签发Token并落库会话",
			req:  &dto.LoginRequest{Email: "ok@example.com", Password: "password123"},
			setupMock: func(userRepo *MockUserRepository, sessionRepo *MockSessionRepository, profileRepo *MockProfileRepository, roleRepo *MockUserRoleRepository) {
				userRepo.On("FindByEmail", "ok@example.com").Return(&model.User{BaseModel: model.BaseModel{ID: 1}, Email: "ok@example.com", Password: hashed}, nil)
				profileRepo.On("FindByID", int64(1)).Return(&model.Profile{ID: 1, Role: constants.RoleAdmin, IsActive: true}, nil)
				sessionRepo.On("Create", mock.MatchedBy(func(s *model.Session) bool {
					return s.UserID == 1 && s.Token != ""
				})).Return(nil)
				roleRepo.On("ListByUser", int64(1)).Return([]string{constants.RoleAdmin}, nil)
			},
		},
		{
			name: "账号不存在_返回统一凭证错误",
			req:  &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMock: func(userRepo *MockUserRepository, sessionRepo *MockSessionRepository, profileRepo *MockProfileRepository, roleRepo *MockUserRoleRepository) {
				userRepo.On("FindByEmail", "nobody@example.com").Return(nil, pkgErrors.ErrRecordNotFound)
			},
			expectedError: pkgErrors.ErrInvalidCredentials,
		},
		{
			name: "密码错误_返回统一凭证错误",
			req:  &dto.LoginRequest{Email: "ok@example.com", Password: "wrong-password"},
			setupMock: func(userRepo *MockUserRepository, sessionRepo *MockSessionRepository, profileRepo *MockProfileRepository, roleRepo *MockUserRoleRepository) {
				userRepo.On("FindByEmail", "ok@example.com").Return(&model.User{BaseModel: model.BaseModel{ID: 1}, Email: "ok@example.com", Password: hashed}, nil)
			},
			expectedError: pkgErrors.ErrInvalidCredentials,
		},
		{
			name: "未激活账号_凭证正确也拒绝",
			req:  &dto.LoginRequest{Email: "inactive@example.com", Password: "password123"},
			setupMock: func(userRepo *MockUserRepository, sessionRepo *MockSessionRepository, profileRepo *MockProfileRepository, roleRepo *MockUserRoleRepository) {
				userRepo.On("FindByEmail", "inactive@example.com").Return(&model.User{BaseModel: model.BaseModel{ID: 2}, Email: "inactive@example.com", Password: hashed}, nil)
				profileRepo.On("FindByID", int64(2)).Return(&model.Profile{ID: 2, Role: constants.RoleStaff, IsActive: false}, nil)
			},
			expectedError: pkgErrors.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			sessionRepo := new(MockSessionRepository)
			profileRepo := new(MockProfileRepository)
			roleRepo := new(MockUserRoleRepository)
			tt.setupMock(userRepo, sessionRepo, profileRepo, roleRepo)

			svc := NewAuthService(userRepo, sessionRepo, profileRepo, roleRepo)
			resp, err := svc.Login(tt.req)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, resp)
				// 拒绝登录时绝不落库会话
				sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, int64(1), resp.User.ID)
			}

			userRepo.AssertExpectations(t)
			sessionRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	token, _, err := jwt.GenerateToken(9)
	assert.NoError(t, err)

	t.Run("会话行存在_返回用户信息", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessionRepo := new(MockSessionRepository)
		profileRepo := new(MockProfileRepository)
		roleRepo := new(MockUserRoleRepository)

		sessionRepo.On("FindByToken", token).Return(&model.Session{ID: 1, UserID: 9, Token: token}, nil)
		userRepo.On("FindByID", int64(9)).Return(&model.User{BaseModel: model.BaseModel{ID: 9}, Email: "u@example.com"}, nil)
		profileRepo.On("FindByID", int64(9)).Return(&model.Profile{ID: 9, Role: constants.RoleStaff, IsActive: true}, nil)
		roleRepo.On("ListByUser", int64(9)).Return([]string{}, nil)

		svc := NewAuthService(userRepo, sessionRepo, profileRepo, roleRepo)
		user, err := svc.ResolveIdentity(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
	})

	t.Run("会话行已删除_签名有效的Token也拒绝", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("FindByToken", token).Return(nil, pkgErrors.ErrRecordNotFound)

		svc := NewAuthService(new(MockUserRepository), sessionRepo, new(MockProfileRepository), new(MockUserRoleRepository))
		user, err := svc.ResolveIdentity(token)
		assert.Equal(t, pkgErrors.ErrInvalidToken, err)
		assert.Nil(t, user)
	})

	t.Run("伪造Token_直接拒绝", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), new(MockSessionRepository), new(MockProfileRepository), new(MockUserRoleRepository))
		user, err := svc.ResolveIdentity("not-a-token")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := crypto.HashPassword("old-password")

	t.Run("当前密码错误", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", int64(3)).Return(&model.User{BaseModel: model.BaseModel{ID: 3}, Password: hashed}, nil)

		svc := NewAuthService(userRepo, new(MockSessionRepository), new(MockProfileRepository), new(MockUserRoleRepository))
		err := svc.ChangePassword(3, &dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password"})
		assert.Equal(t, pkgErrors.ErrInvalidCredentials, err)
	})

	t.Run("修改成功_清除强制改密标记", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		profileRepo := new(MockProfileRepository)
		userRepo.On("FindByID", int64(3)).Return(&model.User{BaseModel: model.BaseModel{ID: 3}, Password: hashed}, nil)
		userRepo.On("UpdatePassword", int64(3), mock.AnythingOfType("string")).Return(nil)
		profileRepo.On("Update", int64(3), map[string]interface{}{"force_password_change": false}).Return(nil)

		svc := NewAuthService(userRepo, new(MockSessionRepository), profileRepo, new(MockUserRoleRepository))
		err := svc.ChangePassword(3, &dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})
		assert.NoError(t, err)

		userRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
	})
}

func TestAuthService_Logout幂等(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("DeleteByToken", "some-token").Return(nil).Twice()

	svc := NewAuthService(new(MockUserRepository), sessionRepo, new(MockProfileRepository), new(MockUserRoleRepository))
	assert.NoError(t, svc.Logout("some-token"))
	assert.NoError(t, svc.Logout("some-token"))
	sessionRepo.AssertExpectations(t)
}
