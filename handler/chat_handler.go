package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
	"taskchat-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{ChatUsecase: chatUsecase, Logger: logger}
}

func (handler *ChatHandler) CreateChat(ctx *fiber.Ctx) error {
	payload := new(req.CreateChatRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	chat, err := handler.ChatUsecase.CreateChat(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create chat: %v", err)
		return err
	}

	response := res.CommonResponse[*entity.Chat]{
		Message:    "Successfully created chat",
		StatusCode: fiber.StatusCreated,
		Data:       chat,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) GetChat(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	chat, err := handler.ChatUsecase.GetChat(ctx.Context(), chatID)
	if err != nil {
		return err
	}

	response := res.CommonResponse[*entity.Chat]{
		Message:    "Successfully fetched chat",
		StatusCode: fiber.StatusOK,
		Data:       chat,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) UpdateChat(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	payload := new(req.UpdateChatRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	chat, err := handler.ChatUsecase.UpdateChat(ctx.Context(), chatID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to update chat %s: %v", chatID, err)
		return err
	}

	response := res.CommonResponse[*entity.Chat]{
		Message:    "Successfully updated chat",
		StatusCode: fiber.StatusOK,
		Data:       chat,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) DeleteChat(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	if err := handler.ChatUsecase.DeleteChat(ctx.Context(), chatID); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to delete chat %s: %v", chatID, err)
		return err
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully deleted chat",
		StatusCode: fiber.StatusOK,
		Data:       chatID,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) GetChatsByUser(ctx *fiber.Ctx) error {
	userID := ctx.Params("userId")

	chats, err := handler.ChatUsecase.GetChatsByUser(ctx.Context(), userID)
	if err != nil {
		return err
	}

	response := res.CommonResponse[[]res.ChatResponse]{
		Message:    "Successfully listed chats",
		StatusCode: fiber.StatusOK,
		Data:       chats,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) AddMember(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	payload := new(req.AddMemberRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	member, err := handler.ChatUsecase.AddMember(ctx.Context(), chatID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to add member to chat %s: %v", chatID, err)
		return err
	}

	response := res.CommonResponse[*entity.ChatMember]{
		Message:    "Successfully added member",
		StatusCode: fiber.StatusCreated,
		Data:       member,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) GetMembers(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	members, err := handler.ChatUsecase.GetMembers(ctx.Context(), chatID)
	if err != nil {
		return err
	}

	response := res.CommonResponse[[]res.MemberResponse]{
		Message:    "Successfully listed members",
		StatusCode: fiber.StatusOK,
		Data:       members,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) RemoveMember(ctx *fiber.Ctx) error {
	membershipID := ctx.Params("membershipId")

	if err := handler.ChatUsecase.RemoveMember(ctx.Context(), membershipID); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to remove membership %s: %v", membershipID, err)
		return err
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully removed member",
		StatusCode: fiber.StatusOK,
		Data:       membershipID,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
