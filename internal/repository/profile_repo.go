package repository

import (
	"gorm.io/gorm"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	FindByID(id int64) (*model.Profile, error)
	List() ([]*model.Profile, error)
	Update(id int64, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建用户资料失败", err)
	}
	return nil
}

func (r *profileRepository) FindByID(id int64) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询用户资料失败", err)
	}
	return &profile, nil
}

func (r *profileRepository) List() ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询用户资料列表失败", err)
	}
	return profiles, nil
}

// Update 按提交的字段集合做部分更新
func (r *profileRepository) Update(id int64, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Profile{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新用户资料失败", err)
	}
	return nil
}
