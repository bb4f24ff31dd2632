package model

import "time"

const UserTableName = "users"
const SessionTableName = "sessions"
const ProfileTableName = "profiles"
const UserRoleTableName = "user_roles"

// User 账号模型, 与Profile同ID一一对应
type User struct {
	BaseModel
	Email    string `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // 不返回到前端
}

// TableName 指定表名
func (User) TableName() string {
	return UserTableName
}

// Session 登录会话, 一次登录一行; 管理员重置密码时按用户整体删除
type Session struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"size:512;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return SessionTableName
}

// Profile 用户资料, ID与users.id一致
// Role 为展示用主角色; 授权判断以 user_roles 行为准(无行时回退该字段)
type Profile struct {
	ID                  int64     `gorm:"primaryKey" json:"id"`
	FullName            string    `gorm:"size:100;not null" json:"full_name"`
	Role                string    `gorm:"size:20;not null;default:staff" json:"role"`
	AvatarURL           *string   `gorm:"size:255" json:"avatar_url"`
	Email               string    `gorm:"size:191;not null" json:"email"`
	IsActive            bool      `gorm:"not null;default:false" json:"is_active"`
	ForcePasswordChange bool      `gorm:"not null;default:false" json:"force_password_change"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return ProfileTableName
}

// UserRole 角色授权行, 一个用户可持有多个角色
type UserRole struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role      string    `gorm:"size:20;not null;uniqueIndex:idx_user_role" json:"role"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return UserRoleTableName
}
