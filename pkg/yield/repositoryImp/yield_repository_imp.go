package repositoryImp

import (
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/yield/repository"
)

type yieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.YieldRepository { return &yieldRepo{db} }

func (r *yieldRepo) Create(p *entities.YieldPrediction) error { return r.db.Create(p).Error }

func (r *yieldRepo) Latest(userKey string) (*entities.YieldPrediction, error) {
	var p entities.YieldPrediction
	if err := r.db.Where("user_key = ?", userKey).Order("date desc, id desc").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *yieldRepo) List(userKey string, limit int) ([]entities.YieldPrediction, error) {
	q := r.db.Where("user_key = ?", userKey).Order("date desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []entities.YieldPrediction
	return out, q.Find(&out).Error
}
