package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
	"taskchat-api/enum"
	"taskchat-api/repository"
)

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewMessageUsecase(messageRepository *repository.MessageRepository, chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) MessageUsecase {
	return &MessageUsecaseImpl{MessageRepository: messageRepository, ChatRepository: chatRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *MessageUsecaseImpl) CreateMessage(ctx context.Context, request *req.MessageRequest, attachment *Attachment) (*entity.Message, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate message request: %v", err)
		return nil, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, trx, &chat, request.ChatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}

	// posting rights require membership of the recipient chat
	isMember, err := uc.ChatRepository.IsMember(ctx, trx, request.ChatID, request.SenderID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		uc.Logger.Warnf("user %s tried to post into chat %s without membership", request.SenderID, request.ChatID)
		return nil, fiber.NewError(fiber.StatusForbidden, "sender is not a member of this chat")
	}

	messageType := enum.MessageType(request.Type)
	if messageType == "" {
		messageType = enum.MessageTypeText
		if attachment != nil {
			messageType = enum.MessageTypeFile
		}
	}

	message := &entity.Message{
		SenderID: request.SenderID,
		ChatID:   request.ChatID,
		Type:     messageType,
		Content:  request.Content,
	}
	if attachment != nil {
		message.FileData = attachment.Data
		message.FileName = attachment.FileName
		message.FileType = attachment.FileType
	}

	if err := uc.MessageRepository.Save(ctx, trx, message); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fiber.NewError(fiber.StatusNotFound, "sender not found")
		}
		uc.Logger.WithError(err).Errorf("failed to save message: %v", err)
		return nil, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit message: %v", err)
		return nil, err
	}

	return message, nil
}

func (uc *MessageUsecaseImpl) GetMessagesByChatID(ctx context.Context, chatID string) ([]res.MessageResponse, error) {
	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, uc.DB, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}

	messages, err := uc.MessageRepository.FindAllByChatID(ctx, uc.DB, chatID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get messages for chat %s: %v", chatID, err)
		return nil, err
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, res.MessageResponse{
			MessageID:     msg.ID,
			SenderID:      msg.SenderID,
			SenderName:    msg.Sender.Name,
			Type:          string(msg.Type),
			Content:       msg.Content,
			FileName:      msg.FileName,
			HasAttachment: msg.HasAttachment(),
			CreatedAt:     msg.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}

func (uc *MessageUsecaseImpl) GetAttachment(ctx context.Context, messageID string) (*entity.Message, error) {
	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "message not found")
		}
		return nil, err
	}

	if !message.HasAttachment() {
		return nil, fiber.NewError(fiber.StatusNotFound, "message has no attachment")
	}

	return &message, nil
}
