package service

import (
	"errors"

	"cropwise/entities"
	"cropwise/pkg/growth"
)

var ErrNotFound = errors.New("growth entry not found")

// NewEntry is what a grower submits; the expected harvest is derived.
type NewEntry struct {
	CropType      string  `json:"crop_type" validate:"required"`
	GrowthStage   string  `json:"growth_stage" validate:"required,oneof=seedling vegetative flowering fruiting harvest"`
	PlantDate     string  `json:"plant_date" validate:"required,datetime=2006-01-02"`
	CurrentHeight float64 `json:"current_height" validate:"gte=0"`
	HealthStatus  string  `json:"health_status"`
	Notes         string  `json:"notes"`
}

type GrowthService interface {
	Add(userKey string, in NewEntry) (*entities.GrowthEntry, error)
	List(userKey string) ([]entities.GrowthEntry, error)
	Delete(userKey, id string) error
	Summary(userKey string) ([]growth.CropSummary, error)
}
