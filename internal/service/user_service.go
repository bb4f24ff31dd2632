package service

import (
	"go.uber.org/zap"

	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/pkg/crypto"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

// UserService 管理员用户管理 + 用户资料
type UserService interface {
	AdminCreate(req *dto.AdminCreateUserRequest) (*model.Profile, error)
	ResetPassword(req *dto.ResetPasswordRequest) error
	SetActive(userID int64, isActive bool) error
	UpdateRole(userID int64, role string) error
	ListProfiles() ([]*model.Profile, error)
	GetProfile(id int64) (*model.Profile, error)
	UpdateProfile(id int64, req *dto.ProfileUpdateRequest) (*model.Profile, error)
}

type userService struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	userRoleRepo repository.UserRoleRepository
	sessionRepo  repository.SessionRepository
	logger       *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	userRoleRepo repository.UserRoleRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		userRoleRepo: userRoleRepo,
		sessionRepo:  sessionRepo,
		logger:       logger,
	}
}

// AdminCreate 管理员开号, 账号直接激活并要求首登改密
func (s *userService) AdminCreate(req *dto.AdminCreateUserRequest) (*model.Profile, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, pkgErrors.ErrEmailTaken
	} else if err != pkgErrors.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user := &model.User{Email: req.Email, Password: hashed}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = constants.RoleStaff
	}

	profile := &model.Profile{
		ID:                  user.ID,
		FullName:            req.FullName,
		Email:               req.Email,
		Role:                role,
		IsActive:            true,
		ForcePasswordChange: true,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	if err := s.userRoleRepo.Add(user.ID, role); err != nil {
		return nil, err
	}

	s.logger.Info("管理员创建用户",
		zap.Int64("user_id", user.ID),
		zap.String("role", role))
	return profile, nil
}

// ResetPassword 重置密码并吊销该用户全部会话, 下次登录需改密
func (s *userService) ResetPassword(req *dto.ResetPasswordRequest) error {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	hashed, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	if err := s.userRepo.UpdatePassword(req.UserID, hashed); err != nil {
		return err
	}

	if err := s.profileRepo.Update(req.UserID, map[string]interface{}{
		"force_password_change": true,
	}); err != nil {
		return err
	}

	// 旧Token签名仍有效, 删除会话行使其立即失效
	if err := s.sessionRepo.DeleteByUser(req.UserID); err != nil {
		return err
	}

	s.logger.Info("管理员重置用户密码", zap.Int64("user_id", req.UserID))
	return nil
}

func (s *userService) SetActive(userID int64, isActive bool) error {
	if _, err := s.profileRepo.FindByID(userID); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	return s.profileRepo.Update(userID, map[string]interface{}{
		"is_active": isActive,
	})
}

// UpdateRole 同步更新档案主角色与授权表
func (s *userService) UpdateRole(userID int64, role string) error {
	if _, err := s.profileRepo.FindByID(userID); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	if err := s.profileRepo.Update(userID, map[string]interface{}{
		"role": role,
	}); err != nil {
		return err
	}

	return s.userRoleRepo.ReplaceForUser(userID, role)
}

func (s *userService) ListProfiles() ([]*model.Profile, error) {
	return s.profileRepo.List()
}

func (s *userService) GetProfile(id int64) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile 部分更新, 未提交的字段保持原值
func (s *userService) UpdateProfile(id int64, req *dto.ProfileUpdateRequest) (*model.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}

	if len(fields) > 0 {
		if err := s.profileRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	return s.profileRepo.FindByID(id)
}
