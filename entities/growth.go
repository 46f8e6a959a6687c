package entities

import "time"

type GrowthEntry struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserKey         string    `gorm:"index" json:"-"`
	CropType        string    `json:"crop_type"`
	GrowthStage     string    `json:"growth_stage"` // seedling|vegetative|flowering|fruiting|harvest
	PlantDate       string    `json:"plant_date"`
	ExpectedHarvest string    `json:"expected_harvest"`
	CurrentHeight   float64   `json:"current_height"` // cm
	HealthStatus    string    `json:"health_status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
