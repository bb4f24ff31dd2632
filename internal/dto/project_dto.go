package dto

// ProjectCreateRequest 创建项目请求
type ProjectCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=191"`
	Description *string `json:"description"`
	BrandColor  string  `json:"brand_color" binding:"omitempty,max=20"`
}

// ProjectUpdateRequest 更新项目请求(部分字段)
type ProjectUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=191"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed archived"`
	BrandColor  *string `json:"brand_color" binding:"omitempty,max=20"`
}

// MemberAddRequest 添加项目成员请求
type MemberAddRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}

// MemberIDParam 项目成员路径参数
type MemberIDParam struct {
	ID     int64 `uri:"id" binding:"required,min=1"`
	UserID int64 `uri:"userId" binding:"required,min=1"`
}
