package service

import (
	"errors"

	"cropwise/entities"
)

const HistoryLimit = 20

var ErrEmptyMessage = errors.New("message is empty")

type Exchange struct {
	Question entities.ChatMessage `json:"question"`
	Answer   entities.ChatMessage `json:"answer"`
}

type ChatService interface {
	Send(userKey, text string) (*Exchange, error)
	// History is the last HistoryLimit messages, oldest first.
	History(userKey string) ([]entities.ChatMessage, error)
	Clear(userKey string) error
}
