package repository

import "cropwise/entities"

type FarmRepository interface {
	Find(userKey string) (*entities.Farm, error)
	Create(f *entities.Farm) error
	// UpdateFields writes only the named struct fields of f.
	UpdateFields(f *entities.Farm, fields ...string) error
}
