package repository

import "cropwise/entities"

// RecordRepository lists newest-first. from/to bound the ISO date, "" is open.
type RecordRepository interface {
	Create(r *entities.FarmRecord) error
	Update(r *entities.FarmRecord) error
	FindByID(userKey, id string) (*entities.FarmRecord, error)
	Delete(userKey, id string) (bool, error)
	List(userKey, from, to string) ([]entities.FarmRecord, error)
}

type ActivityRepository interface {
	Create(a *entities.FarmActivity) error
	Delete(userKey, id string) (bool, error)
	List(userKey, from, to string) ([]entities.FarmActivity, error)
}

type ProductionRepository interface {
	Create(p *entities.FarmProduction) error
	Delete(userKey, id string) (bool, error)
	List(userKey string) ([]entities.FarmProduction, error)
}

type InventoryRepository interface {
	Create(i *entities.InventoryItem) error
	Update(i *entities.InventoryItem) error
	FindByID(userKey, id string) (*entities.InventoryItem, error)
	Delete(userKey, id string) (bool, error)
	List(userKey string) ([]entities.InventoryItem, error)
}
