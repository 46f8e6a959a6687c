package entities

import "time"

type UserProfile struct {
	EmailKey  string    `gorm:"primaryKey" json:"email_key"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Theme     string    `json:"theme"` // light|dark
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
