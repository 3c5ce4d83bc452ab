package repository

import (
	"context"

	"gorm.io/gorm"

	"taskchat-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindAllByChatID returns the chat log in insertion order.
func (repository MessageRepository) FindAllByChatID(ctx context.Context, db *gorm.DB, chatID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("Sender").
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
