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
	"taskchat-api/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewChatUsecase(chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ChatUsecase {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *ChatUsecaseImpl) CreateChat(ctx context.Context, request *req.CreateChatRequest) (*entity.Chat, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate chat request: %v", err)
		return nil, err
	}

	newChat := &entity.Chat{
		Name:  request.ChatName,
		Image: request.Image,
	}

	// chat and its first membership are a single unit of work
	if err := uc.ChatRepository.CreateChatWithCreator(ctx, uc.DB, newChat, request.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fiber.NewError(fiber.StatusNotFound, "creator not found")
		}
		uc.Logger.WithError(err).Errorf("failed to create chat: %v", err)
		return nil, err
	}

	uc.Logger.Infof("Chat created with id: %s, creator: %s", newChat.ID, request.CreatorID)
	return newChat, nil
}

func (uc *ChatUsecaseImpl) GetChat(ctx context.Context, chatID string) (*entity.Chat, error) {
	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, uc.DB, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}
	return &chat, nil
}

func (uc *ChatUsecaseImpl) UpdateChat(ctx context.Context, chatID string, request *req.UpdateChatRequest) (*entity.Chat, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate chat request: %v", err)
		return nil, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, trx, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}

	chat.Name = request.ChatName
	chat.Image = request.Image

	if err := uc.ChatRepository.Update(ctx, trx, &chat); err != nil {
		uc.Logger.WithError(err).Errorf("failed to update chat: %v", err)
		return nil, err
	}

	if err := trx.Commit().Error; err != nil {
		return nil, err
	}

	return &chat, nil
}

// DeleteChat removes the chat row; memberships and messages go with it via
// the cascade constraints, tasks keep existing with a nulled chat reference.
func (uc *ChatUsecaseImpl) DeleteChat(ctx context.Context, chatID string) error {
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, trx, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return err
	}

	if err := uc.ChatRepository.Delete(ctx, trx, &chat); err != nil {
		uc.Logger.WithError(err).Errorf("failed to delete chat: %v", err)
		return err
	}

	return trx.Commit().Error
}

func (uc *ChatUsecaseImpl) GetChatsByUser(ctx context.Context, userID string) ([]res.ChatResponse, error) {
	chats, err := uc.ChatRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get chats for user %s: %v", userID, err)
		return nil, err
	}

	chatResponses := make([]res.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		chatResponses = append(chatResponses, res.ChatResponse{
			ID:    chat.ID,
			Name:  chat.Name,
			Image: chat.Image,
		})
	}
	return chatResponses, nil
}

func (uc *ChatUsecaseImpl) AddMember(ctx context.Context, chatID string, request *req.AddMemberRequest) (*entity.ChatMember, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate member request: %v", err)
		return nil, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, trx, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}

	member := &entity.ChatMember{ChatID: chatID, MemberID: request.MemberID}
	if err := trx.WithContext(ctx).Create(member).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, fiber.NewError(fiber.StatusConflict, "already a member of this chat")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, fiber.NewError(fiber.StatusNotFound, "member not found")
		}
		uc.Logger.WithError(err).Errorf("failed to add member: %v", err)
		return nil, err
	}

	if err := trx.Commit().Error; err != nil {
		return nil, err
	}

	uc.Logger.Infof("User %s joined chat %s", request.MemberID, chatID)
	return member, nil
}

func (uc *ChatUsecaseImpl) GetMembers(ctx context.Context, chatID string) ([]res.MemberResponse, error) {
	var chat entity.Chat
	if err := uc.ChatRepository.FindById(ctx, uc.DB, &chat, chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "chat not found")
		}
		return nil, err
	}

	rows, err := uc.ChatRepository.FindMembers(ctx, uc.DB, chatID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list members of chat %s: %v", chatID, err)
		return nil, err
	}

	members := make([]res.MemberResponse, 0, len(rows))
	for _, row := range rows {
		members = append(members, res.MemberResponse{
			MembershipID: row.ID,
			MemberID:     row.MemberID,
			MemberName:   row.Name,
		})
	}
	return members, nil
}

func (uc *ChatUsecaseImpl) RemoveMember(ctx context.Context, membershipID string) error {
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var member entity.ChatMember
	if err := trx.WithContext(ctx).Where("id = ?", membershipID).Take(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "membership not found")
		}
		return err
	}

	if err := trx.WithContext(ctx).Delete(&member).Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to remove member: %v", err)
		return err
	}

	return trx.Commit().Error
}
