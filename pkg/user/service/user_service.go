package service

import (
	"cropwise/entities"
	"cropwise/pkg/middleware"
)

const DefaultTheme = "dark"

type ProfileInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark"`
}

type UserService interface {
	Save(s middleware.Session, in ProfileInput) (*entities.UserProfile, error)
	// Get returns the stored profile, or a bare one with the default theme.
	Get(s middleware.Session) (*entities.UserProfile, error)
	// SetTheme queues a debounced theme write.
	SetTheme(s middleware.Session, theme string) error
	// Flush writes any queued theme changes now.
	Flush()
}
