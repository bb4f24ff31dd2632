package dto

// NotificationCreateRequest 创建通知请求
// SendEmail 为 true 时同时经由Outbox投递邮件
type NotificationCreateRequest struct {
	UserID    int64   `json:"user_id" binding:"required,min=1"`
	Title     string  `json:"title" binding:"required,max=191"`
	Message   string  `json:"message" binding:"required"`
	Type      string  `json:"type" binding:"omitempty,max=20"`
	Link      *string `json:"link" binding:"omitempty,max=255"`
	SendEmail bool    `json:"send_email"`
}
