package repositoryImp

import (
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/growth/repository"
)

type growthRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GrowthRepository { return &growthRepo{db} }

func (r *growthRepo) Create(e *entities.GrowthEntry) error { return r.db.Create(e).Error }

func (r *growthRepo) ListByUser(userKey string) ([]entities.GrowthEntry, error) {
	var out []entities.GrowthEntry
	return out, r.db.Where("user_key = ?", userKey).Order("created_at desc, id desc").Find(&out).Error
}

func (r *growthRepo) Delete(userKey, id string) (bool, error) {
	res := r.db.Where("user_key = ? AND id = ?", userKey, id).Delete(&entities.GrowthEntry{})
	return res.RowsAffected > 0, res.Error
}
