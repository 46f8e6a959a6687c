package repository

import "cropwise/entities"

type ChatRepository interface {
	Append(m *entities.ChatMessage) error
	// Recent returns at most limit messages, newest first.
	Recent(userKey string, limit int) ([]entities.ChatMessage, error)
	Clear(userKey string) error
}
