package service

import (
	"cropwise/entities"
	"cropwise/pkg/farm"
)

type FarmService interface {
	// Get returns the user's farm, seeding the default one on first access.
	Get(userKey string) (*entities.Farm, error)
	SetCrops(userKey string, crops []entities.Crop) (*entities.Farm, error)
	SetPrices(userKey string, prices map[string]float64) (*entities.Farm, error)
	Recalculate(userKey string) (*entities.Farm, farm.Metrics, error)
}
