package model

import "gorm.io/gorm"

// Migrate 按依赖顺序建表/补列
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Session{},
		&Profile{},
		&UserRole{},
		&Project{},
		&ProjectMember{},
		&Task{},
		&TaskAssignee{},
		&TaskComment{},
		&TaskLog{},
		&Notification{},
	)
}
