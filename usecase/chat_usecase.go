package usecase

import (
	"context"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
)

type ChatUsecase interface {
	CreateChat(ctx context.Context, request *req.CreateChatRequest) (*entity.Chat, error)
	GetChat(ctx context.Context, chatID string) (*entity.Chat, error)
	UpdateChat(ctx context.Context, chatID string, request *req.UpdateChatRequest) (*entity.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error
	GetChatsByUser(ctx context.Context, userID string) ([]res.ChatResponse, error)
	AddMember(ctx context.Context, chatID string, request *req.AddMemberRequest) (*entity.ChatMember, error)
	GetMembers(ctx context.Context, chatID string) ([]res.MemberResponse, error)
	RemoveMember(ctx context.Context, membershipID string) error
}
