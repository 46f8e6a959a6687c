package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropwise/entities"
	"cropwise/pkg/weather/repository"
)

type weatherRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeatherRepository { return &weatherRepo{db} }

func (r *weatherRepo) Save(s *entities.WeatherSnapshot) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(s).Error
}

func (r *weatherRepo) Find(userKey string) (*entities.WeatherSnapshot, error) {
	var s entities.WeatherSnapshot
	if err := r.db.Where("user_key = ?", userKey).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
