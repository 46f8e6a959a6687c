package repository

import "cropwise/entities"

type GrowthRepository interface {
	Create(e *entities.GrowthEntry) error
	ListByUser(userKey string) ([]entities.GrowthEntry, error)
	Delete(userKey, id string) (bool, error)
}
