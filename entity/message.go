package entity

import "taskchat-api/enum"

type Message struct {
	BaseEntity
	SenderID string           `json:"senderId" gorm:"type:varchar(255);not null"`
	ChatID   string           `json:"chatId" gorm:"type:varchar(255);not null"`
	Type     enum.MessageType `json:"type" gorm:"type:varchar(10);default:'text'"`
	Content  string           `json:"content" gorm:"type:text"`
	FileData []byte           `json:"-" gorm:"type:bytea"`
	FileName string           `json:"fileName,omitempty" gorm:"type:varchar(255)"`
	FileType string           `json:"fileType,omitempty" gorm:"type:varchar(100)"`

	Sender User `json:"-" gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:CASCADE;"`
	Chat   Chat `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m *Message) HasAttachment() bool {
	return len(m.FileData) > 0
}
