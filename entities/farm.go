package entities

import "time"

// Crop is one planted plot on the dashboard. Area is free text such as "0.4 acres".
type Crop struct {
	Name                string `json:"name"`
	PlantedDate         string `json:"planted_date"`
	ExpectedHarvestDate string `json:"expected_harvest_date"`
	Area                string `json:"area"`
	Health              int    `json:"health,omitempty"` // 0..100, zero means unknown
}

type Farm struct {
	UserKey                 string             `gorm:"primaryKey" json:"-"`
	Crops                   []Crop             `gorm:"serializer:json" json:"crops"`
	HealthyPlantsPercentage *float64           `json:"healthy_plants_percentage"`
	ExpectedYield           *float64           `json:"expected_yield"` // tonnes
	GrowthProgress          map[string]int     `gorm:"serializer:json" json:"growth_progress"`
	CropPrices              map[string]float64 `gorm:"serializer:json" json:"crop_prices"`
	LastUpdated             time.Time          `json:"last_updated"`
}
