package repository

import "cropwise/entities"

type UserRepository interface {
	Find(emailKey string) (*entities.UserProfile, error)
	// Upsert writes p, leaving the stored theme alone when p.Theme is empty.
	Upsert(p *entities.UserProfile) error
	SetTheme(emailKey, email, theme string) error
}
