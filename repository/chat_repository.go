package repository

import (
	"context"

	"gorm.io/gorm"

	"taskchat-api/entity"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

type ChatMemberRow struct {
	ID       string
	MemberID string
	Name     string
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (repository ChatRepository) CreateChatWithCreator(ctx context.Context, db *gorm.DB, chat *entity.Chat, creatorID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		member := entity.ChatMember{ChatID: chat.ID, MemberID: creatorID}
		return tx.Create(&member).Error
	})
}

func (repository ChatRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Chat, error) {
	var chats []entity.Chat
	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Joins("JOIN t_chat_member cm ON cm.chat_id = t_chat.id").
		Where("cm.member_id = ?", userID).
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (repository ChatRepository) IsMember(ctx context.Context, db *gorm.DB, chatID, userID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Where("chat_id = ? AND member_id = ?", chatID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindMembers returns the roster with member names joined in.
func (repository ChatRepository) FindMembers(ctx context.Context, db *gorm.DB, chatID string) ([]ChatMemberRow, error) {
	var rows []ChatMemberRow
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Select("t_chat_member.id, t_chat_member.member_id, t_user.name").
		Joins("JOIN t_user ON t_user.id = t_chat_member.member_id").
		Where("t_chat_member.chat_id = ?", chatID).
		Scan(&rows).Error
	return rows, err
}
