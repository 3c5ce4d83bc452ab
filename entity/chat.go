package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	BaseEntity
	Name  string `json:"name" gorm:"type:varchar(255);not null"`
	Image string `json:"image,omitempty" gorm:"type:text"`

	Members  []ChatMember `json:"members,omitempty" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Messages []Message    `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Tasks    []Task       `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:SET NULL;"`
}

type ChatMember struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(255)"`
	ChatID   string `json:"chatId" gorm:"type:varchar(255);not null;uniqueIndex:idx_chat_member"`
	MemberID string `json:"memberId" gorm:"type:varchar(255);not null;uniqueIndex:idx_chat_member"`

	Chat Chat `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE;"`
	User User `json:"-" gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (member *ChatMember) BeforeCreate(tx *gorm.DB) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	return nil
}
