package repository

import "cropwise/entities"

type WeatherRepository interface {
	// Save replaces the stored snapshot for s.UserKey.
	Save(s *entities.WeatherSnapshot) error
	Find(userKey string) (*entities.WeatherSnapshot, error)
}
