package service

import (
	"github.com/samber/lo"

	"agencyflow/internal/dto"
	"agencyflow/internal/pkg/auth"
	"agencyflow/pkg/constants"
)

// AuthorizationService 能力判定入口, 角色到能力的映射只在这里收敛
type AuthorizationService interface {
	// EffectiveRoles 返回用户的有效角色集合
	EffectiveRoles(user *dto.UserInfo) []string
	// Can 判定用户是否具备指定能力
	Can(user *dto.UserInfo, perm auth.Permission) bool
	// IsAdmin 判定用户是否为管理员
	IsAdmin(user *dto.UserInfo) bool
}

type authorizationService struct{}

func NewAuthorizationService() AuthorizationService {
	return &authorizationService{}
}

// EffectiveRoles 授权表中的角色为准, 无授权行时回退到档案角色
func (s *authorizationService) EffectiveRoles(user *dto.UserInfo) []string {
	if user == nil {
		return nil
	}

	primary := constants.RoleStaff
	if user.Profile != nil && user.Profile.Role != "" {
		primary = user.Profile.Role
	}

	return auth.EffectiveRoles(lo.Uniq(user.Roles), primary)
}

func (s *authorizationService) Can(user *dto.UserInfo, perm auth.Permission) bool {
	if user == nil {
		return false
	}
	return auth.Allow(s.EffectiveRoles(user), perm)
}

func (s *authorizationService) IsAdmin(user *dto.UserInfo) bool {
	if user == nil {
		return false
	}
	return lo.Contains(s.EffectiveRoles(user), string(auth.RoleAdmin))
}
