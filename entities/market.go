package entities

import "time"

type MarketPrice struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Crop       string    `gorm:"uniqueIndex:idx_crop_variety" json:"crop"`
	Variety    string    `gorm:"uniqueIndex:idx_crop_variety" json:"variety"`
	PricePerKg float64   `json:"price_per_kg"`
	Source     string    `json:"source,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PriceTrend struct {
	Period  string  `gorm:"primaryKey" json:"period"` // week|month|season
	Percent float64 `json:"percent"`
}
