package repository

import "cropwise/entities"

type MarketRepository interface {
	CountPrices() (int64, error)
	// UpsertPrices inserts or replaces prices keyed by (crop, variety).
	UpsertPrices(prices []entities.MarketPrice) error
	ListPrices(crop string) ([]entities.MarketPrice, error)

	CountTrends() (int64, error)
	SaveTrends(trends []entities.PriceTrend) error
	ListTrends() ([]entities.PriceTrend, error)
}
