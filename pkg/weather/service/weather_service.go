package service

import (
	"context"
	"errors"

	"cropwise/entities"
	"cropwise/pkg/climate"
	"cropwise/pkg/weather"
)

// FarmKey owns the snapshot kept fresh by the scheduler.
const FarmKey = "_farm"

var ErrNoSnapshot = errors.New("no weather snapshot")

type Report struct {
	Conditions climate.Conditions `json:"conditions"`
	Advice     []climate.Advice   `json:"advice"`
}

// Overview is what the weather page shows in one call.
type Overview struct {
	Current *entities.WeatherSnapshot `json:"current"`
	Days    []weather.Day             `json:"days"`
	Report
}

type WeatherService interface {
	// Current fetches live conditions and stores them as userKey's snapshot.
	Current(ctx context.Context, userKey string) (*entities.WeatherSnapshot, error)
	Last(userKey string) (*entities.WeatherSnapshot, error)
	Advice(ctx context.Context) (*Report, error)
	Daily(ctx context.Context) ([]weather.Day, error)
	// Overview fetches current conditions and the forecast concurrently.
	Overview(ctx context.Context, userKey string) (*Overview, error)
	Refresh(ctx context.Context) error
}
