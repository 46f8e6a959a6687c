package repositoryImp

import (
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Append(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *chatRepo) Recent(userKey string, limit int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	err := r.db.Where("user_key = ?", userKey).
		Order("timestamp desc, id desc").Limit(limit).Find(&out).Error
	return out, err
}

func (r *chatRepo) Clear(userKey string) error {
	return r.db.Where("user_key = ?", userKey).Delete(&entities.ChatMessage{}).Error
}
