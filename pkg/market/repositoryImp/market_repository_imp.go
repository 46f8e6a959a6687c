package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropwise/entities"
	"cropwise/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) CountPrices() (int64, error) {
	var n int64
	err := r.db.Model(&entities.MarketPrice{}).Count(&n).Error
	return n, err
}

func (r *marketRepo) UpsertPrices(prices []entities.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop"}, {Name: "variety"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_per_kg", "source", "updated_at"}),
	}).Create(&prices).Error
}

func (r *marketRepo) ListPrices(crop string) ([]entities.MarketPrice, error) {
	var out []entities.MarketPrice
	q := r.db.Order("crop asc, variety asc")
	if crop != "" {
		q = q.Where("crop = ?", crop)
	}
	return out, q.Find(&out).Error
}

func (r *marketRepo) CountTrends() (int64, error) {
	var n int64
	err := r.db.Model(&entities.PriceTrend{}).Count(&n).Error
	return n, err
}

func (r *marketRepo) SaveTrends(trends []entities.PriceTrend) error {
	if len(trends) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&trends).Error
}

func (r *marketRepo) ListTrends() ([]entities.PriceTrend, error) {
	var out []entities.PriceTrend
	return out, r.db.Order("period asc").Find(&out).Error
}
