package entities

import "time"

type WeatherSnapshot struct {
	UserKey     string    `gorm:"primaryKey" json:"-"`
	Temperature float64   `json:"temperature"`
	Condition   string    `json:"condition"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}
