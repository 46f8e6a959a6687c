package repositoryImp

import (
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Find(userKey string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Where("user_key = ?", userKey).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) UpdateFields(f *entities.Farm, fields ...string) error {
	return r.db.Model(&entities.Farm{}).Where("user_key = ?", f.UserKey).
		Select(fields).Updates(f).Error
}
