package entities

import "time"

type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserKey   string    `gorm:"index" json:"-"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
