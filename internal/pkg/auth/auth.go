package auth

import "strings"

// Role 内置角色
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Permission 内置权限
type Permission string

const (
	PermProjectCreate  Permission = "project:create"
	PermProjectUpdate  Permission = "project:update"
	PermProjectViewAll Permission = "project:view_all"

	PermMemberManage Permission = "member:manage"

	PermTaskCreate Permission = "task:create"
	PermTaskUpdate Permission = "task:update"

	PermUserManage Permission = "user:manage"
)

// RolePermissions 每个角色拥有的权限集合
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		"*",
	},
	RoleManager: {
		"project:*",
		"member:*",
		"task:*",
	},
	RoleStaff: {
		"task:*",
	},
}

// EffectiveRoles 计算用户的有效角色集合: 授权表行优先, 无行时回退资料上的主角色
// 所有受保护路由统一经由该函数 + Allow 做能力判断
func EffectiveRoles(grants []string, primaryRole string) []string {
	if len(grants) > 0 {
		return grants
	}
	if primaryRole != "" {
		return []string{primaryRole}
	}
	return nil
}

// Allow 判断一组角色是否包含所需权限，支持通配符
func Allow(roles []string, need Permission) bool {
	permissions := collectPermissions(roles)

	return len(permissions) > 0 && allow(permissions, need)
}

func collectPermissions(roles []string) []Permission {
	perms := make([]Permission, 0)
	for _, r := range roles {
		if ps, ok := RolePermissions[Role(r)]; ok {
			perms = append(perms, ps...)
		}
	}
	return perms
}

func allow(have []Permission, need Permission) bool {
	reqParts := strings.Split(string(need), ":")

	for _, p := range have {
		if p == need || p == "*" {
			return true
		}

		allParts := strings.Split(string(p), ":")
		if len(allParts) == 0 || allParts[len(allParts)-1] != "*" {
			continue
		}

		// 前缀通配: project:* 匹配 project:create
		prefix := allParts[:len(allParts)-1]
		if len(prefix) > len(reqParts) {
			continue
		}
		matched := true
		for i := range prefix {
			if prefix[i] != reqParts[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
