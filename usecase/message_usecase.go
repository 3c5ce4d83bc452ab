package usecase

import (
	"context"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
)

type Attachment struct {
	Data     []byte
	FileName string
	FileType string
}

type MessageUsecase interface {
	CreateMessage(ctx context.Context, request *req.MessageRequest, attachment *Attachment) (*entity.Message, error)
	GetMessagesByChatID(ctx context.Context, chatID string) ([]res.MessageResponse, error)
	GetAttachment(ctx context.Context, messageID string) (*entity.Message, error)
}
