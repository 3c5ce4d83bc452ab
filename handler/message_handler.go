package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

// CreateMessage accepts a multipart form: sender_user_id, recipient_chat_id,
// message_type, content and an optional "file" part stored in-row.
func (handler *MessageHandler) CreateMessage(ctx *fiber.Ctx) error {
	payload := &req.MessageRequest{
		SenderID: ctx.FormValue("sender_user_id"),
		ChatID:   ctx.FormValue("recipient_chat_id"),
		Type:     ctx.FormValue("message_type"),
		Content:  ctx.FormValue("content"),
	}

	var attachment *usecase.Attachment
	if fileHeader, err := ctx.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable file upload")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable file upload")
		}

		attachment = &usecase.Attachment{
			Data:     data,
			FileName: fileHeader.Filename,
			FileType: fileHeader.Header.Get(fiber.HeaderContentType),
		}
	}

	message, err := handler.MessageUsecase.CreateMessage(ctx.Context(), payload, attachment)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create message: %v", err)
		return err
	}

	response := res.CommonResponse[fiber.Map]{
		Message:    "Successfully created message",
		StatusCode: fiber.StatusCreated,
		Data:       fiber.Map{"message_id": message.ID},
	}
	handler.Logger.Infof("Message %s posted into chat %s", message.ID, message.ChatID)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *MessageHandler) GetMessagesByChatID(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	messages, err := handler.MessageUsecase.GetMessagesByChatID(ctx.Context(), chatID)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to get messages for chat %s: %v", chatID, err)
		return err
	}

	response := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully listed messages",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// GetAttachment streams the stored bytes back with the original filename and
// MIME type.
func (handler *MessageHandler) GetAttachment(ctx *fiber.Ctx) error {
	messageID := ctx.Params("messageId")

	message, err := handler.MessageUsecase.GetAttachment(ctx.Context(), messageID)
	if err != nil {
		return err
	}

	if message.FileType != "" {
		ctx.Set(fiber.HeaderContentType, message.FileType)
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", message.FileName))
	return ctx.Send(message.FileData)
}
