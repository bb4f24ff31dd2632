package dto

// AdminCreateUserRequest 管理员创建用户请求
type AdminCreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager staff"`
}

// ResetPasswordRequest 管理员重置密码请求
type ResetPasswordRequest struct {
	UserID      int64  `json:"user_id" binding:"required,min=1"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ActivateUserRequest 启用/停用用户请求
type ActivateUserRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateRoleRequest 调整用户角色请求
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin manager staff"`
}

// ProfileUpdateRequest 更新用户资料请求(部分字段)
type ProfileUpdateRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}
