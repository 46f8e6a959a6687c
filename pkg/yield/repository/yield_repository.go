package repository

import "cropwise/entities"

type YieldRepository interface {
	Create(p *entities.YieldPrediction) error
	Latest(userKey string) (*entities.YieldPrediction, error)
	List(userKey string, limit int) ([]entities.YieldPrediction, error)
}
