package entities

import "time"

// YieldPrediction is append-only; one row per successful estimate.
type YieldPrediction struct {
	ID              string  `gorm:"primaryKey" json:"id"`
	UserKey         string  `gorm:"index" json:"-"`
	CropType        string  `json:"crop_type"`
	FarmArea        float64 `json:"farm_area"`
	PlantingDensity float64 `json:"planting_density"`
	Variety         string  `json:"variety"`
	Conditions      string  `json:"conditions"`
	SoilType        string  `json:"soil_type"`
	Irrigation      string  `json:"irrigation"`
	Fertilizer      string  `json:"fertilizer"`
	PestManagement  string  `json:"pest_management"`
	Season          string  `json:"season"`

	PredictedYield   float64 `json:"predicted_yield"` // tons
	PredictedRevenue int64   `json:"predicted_revenue"`
	ExpectedIncrease int     `json:"expected_increase"` // percent
	AvgHeadWeight    float64 `json:"avg_head_weight"`   // kg
	YieldPerHectare  float64 `json:"yield_per_hectare"` // tons
	TotalPlants      float64 `json:"total_plants"`
	Date             string  `gorm:"index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
