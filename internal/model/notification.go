package model

import "time"

const NotificationTableName = "notifications"

// Notification 用户站内通知
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:191;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:20;not null;default:info" json:"type"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	Link      *string   `gorm:"size:255" json:"link"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return NotificationTableName
}
