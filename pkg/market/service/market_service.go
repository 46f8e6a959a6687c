package service

import (
	"context"

	"cropwise/entities"
)

type ImportResult struct {
	Source   string `json:"source"`
	Imported int    `json:"imported"`
}

type MarketService interface {
	// Seed writes the default prices and trends when none are stored.
	Seed() error
	Prices(crop string) ([]entities.MarketPrice, error)
	Trends() (map[string]float64, error)
	Import(ctx context.Context, rawURL string) (*ImportResult, error)
}
