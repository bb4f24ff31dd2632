package model

import "time"

const ProjectTableName = "projects"
const ProjectMemberTableName = "project_members"

// Project 项目模型, 只做状态流转(归档), 不做物理删除
type Project struct {
	BaseModel
	Name        string  `gorm:"size:191;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Status      string  `gorm:"size:20;not null;default:active" json:"status"`
	BrandColor  string  `gorm:"size:20;not null;default:#0f172a" json:"brand_color"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// ProjectMember 项目成员, (project_id, user_id) 唯一
type ProjectMember struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int64     `gorm:"not null;uniqueIndex:idx_project_user" json:"project_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_project_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (ProjectMember) TableName() string {
	return ProjectMemberTableName
}
