package service

import (
	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/pkg/crypto"
	"agencyflow/internal/pkg/jwt"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(token string) error
	ChangePassword(userID int64, req *dto.ChangePasswordRequest) error
	ResolveIdentity(token string) (*dto.UserInfo, error)
}

type authService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	profileRepo  repository.ProfileRepository
	userRoleRepo repository.UserRoleRepository
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	profileRepo repository.ProfileRepository,
	userRoleRepo repository.UserRoleRepository,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		profileRepo:  profileRepo,
		userRoleRepo: userRoleRepo,
	}
}

// Register 自助注册, 新账号为staff且未激活, 等待管理员审核
func (s *authService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, pkgErrors.ErrEmailTaken
	} else if err != pkgErrors.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	profile := &model.Profile{
		ID:       user.ID,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     constants.RoleStaff,
		IsActive: false,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "注册成功,请等待管理员激活账号",
		UserID:  user.ID,
	}, nil
}

// Login 校验凭证与激活状态, 通过后签发Token并落库会话
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	// 未激活账号即使凭证正确也不签发Token
	profile, err := s.profileRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, pkgErrors.ErrAccountInactive
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成Token失败", err)
	}

	session := &model.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	roles, err := s.userRoleRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: &dto.UserInfo{
			ID:      user.ID,
			Email:   user.Email,
			Profile: profile,
			Roles:   roles,
		},
	}, nil
}

// Logout 删除会话, 重复登出幂等成功
func (s *authService) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}

// ChangePassword 当前密码校验通过后更新, 并清除强制改密标记
func (s *authService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(req.CurrentPassword, user.Password) {
		return pkgErrors.ErrInvalidCredentials
	}

	hashed, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	if err := s.userRepo.UpdatePassword(userID, hashed); err != nil {
		return err
	}

	return s.profileRepo.Update(userID, map[string]interface{}{
		"force_password_change": false,
	})
}

// ResolveIdentity 解析Token并校验会话存在, 任一失败返回错误由调用方降级为匿名
func (s *authService) ResolveIdentity(token string) (*dto.UserInfo, error) {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	// 会话行被删除(登出/管理员重置密码)后, 签名仍有效的Token也拒绝
	if _, err := s.sessionRepo.FindByToken(token); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}

	roles, err := s.userRoleRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.UserInfo{
		ID:      user.ID,
		Email:   user.Email,
		Profile: profile,
		Roles:   roles,
	}, nil
}
