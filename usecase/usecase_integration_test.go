package usecase_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"taskchat-api/config/common"
	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
	"taskchat-api/repository"
	"taskchat-api/security"
	"taskchat-api/usecase"
)

type fixture struct {
	db       *gorm.DB
	auth     usecase.AuthUsecase
	tasks    usecase.TaskUsecase
	chats    usecase.ChatUsecase
	messages usecase.MessageUsecase
}

func newFixture(t *testing.T) *fixture {
	_ = godotenv.Load("../.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Chat{}, &entity.ChatMember{}, &entity.Task{}, &entity.Message{}))

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := validator.New()

	v := viper.New()
	v.Set("JWT_SECRET", "integration-test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})

	userRepo := repository.NewUserRepository()
	taskRepo := repository.NewTaskRepository()
	chatRepo := repository.NewChatRepository()
	messageRepo := repository.NewMessageRepository()

	return &fixture{
		db:       db,
		auth:     usecase.NewAuthUsecase(userRepo, validate, db, log, jwt),
		tasks:    usecase.NewTaskUsecase(taskRepo, chatRepo, validate, db, log),
		chats:    usecase.NewChatUsecase(chatRepo, validate, db, log),
		messages: usecase.NewMessageUsecase(messageRepo, chatRepo, validate, db, log),
	}
}

func registerUser(t *testing.T, f *fixture, name string) res.UserResponse {
	user, err := f.auth.RegisterUser(context.Background(), &req.RegisterRequest{
		Name:     name,
		Email:    uuid.New().String() + "@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return user
}

func requireStatus(t *testing.T, err error, status int) {
	var fiberErr *fiber.Error
	require.Error(t, err)
	require.True(t, errors.As(err, &fiberErr), "expected a classified error, got %v", err)
	require.Equal(t, status, fiberErr.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	email := uuid.New().String() + "@example.com"
	user, err := f.auth.RegisterUser(ctx, &req.RegisterRequest{Name: "Alice", Email: email, Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	login, err := f.auth.LoginUser(ctx, &req.LoginRequest{Email: email, Password: "s3cret-pass"})
	require.NoError(t, err)
	require.Equal(t, user.ID, login.User.ID)
	require.NotEmpty(t, login.Token)

	_, err = f.auth.LoginUser(ctx, &req.LoginRequest{Email: email, Password: "wrong-pass"})
	requireStatus(t, err, fiber.StatusUnauthorized)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	email := uuid.New().String() + "@example.com"
	_, err := f.auth.RegisterUser(ctx, &req.RegisterRequest{Name: "First", Email: email, Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = f.auth.RegisterUser(ctx, &req.RegisterRequest{Name: "Second", Email: email, Password: "s3cret-pass"})
	requireStatus(t, err, fiber.StatusConflict)
}

func TestTaskVisibilityOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := registerUser(t, f, "Owner")
	task, err := f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "solo task"})
	require.NoError(t, err)

	tasks, err := f.tasks.GetTasksForUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)
}

func TestTaskVisibilityThroughChatMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := registerUser(t, f, "Owner")
	member := registerUser(t, f, "Member")

	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "planning", CreatorID: owner.ID})
	require.NoError(t, err)
	_, err = f.chats.AddMember(ctx, chat.ID, &req.AddMemberRequest{MemberID: member.ID})
	require.NoError(t, err)

	shared, err := f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "shared task", ChatID: &chat.ID})
	require.NoError(t, err)

	tasks, err := f.tasks.GetTasksForUser(ctx, member.ID)
	require.NoError(t, err)

	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	require.Contains(t, ids, shared.ID)
}

func TestTaskDeadlineOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := registerUser(t, f, "Owner")

	late := "2026-12-24"
	early := "2026-01-05"
	morning := "08:00"
	evening := "19:30"

	_, err := f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "no deadline"})
	require.NoError(t, err)
	_, err = f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "late", DueDate: &late, DueTime: &morning})
	require.NoError(t, err)
	_, err = f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "early evening", DueDate: &early, DueTime: &evening})
	require.NoError(t, err)
	_, err = f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "early morning", DueDate: &early, DueTime: &morning})
	require.NoError(t, err)

	tasks, err := f.tasks.GetTasksForUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	require.Equal(t, "early morning", tasks[0].Title)
	require.Equal(t, "early evening", tasks[1].Title)
	require.Equal(t, "late", tasks[2].Title)
	require.Equal(t, "no deadline", tasks[3].Title)
}

func TestTaskMutationAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := registerUser(t, f, "Owner")
	outsider := registerUser(t, f, "Outsider")
	member := registerUser(t, f, "Member")

	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "team", CreatorID: owner.ID})
	require.NoError(t, err)
	_, err = f.chats.AddMember(ctx, chat.ID, &req.AddMemberRequest{MemberID: member.ID})
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "guarded", ChatID: &chat.ID})
	require.NoError(t, err)

	_, err = f.tasks.UpdateTask(ctx, outsider.ID, task.ID, &req.TaskRequest{Title: "hijacked", ChatID: &chat.ID})
	requireStatus(t, err, fiber.StatusForbidden)

	err = f.tasks.DeleteTask(ctx, outsider.ID, task.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	// any chat member may modify
	updated, err := f.tasks.UpdateTask(ctx, member.ID, task.ID, &req.TaskRequest{Title: "retitled", ChatID: &chat.ID})
	require.NoError(t, err)
	require.Equal(t, "retitled", updated.Title)

	require.NoError(t, f.tasks.DeleteTask(ctx, owner.ID, task.ID))

	err = f.tasks.DeleteTask(ctx, owner.ID, task.ID)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestTaskUpdateOverwritesOmittedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := registerUser(t, f, "Owner")
	date := "2026-06-01"
	task, err := f.tasks.CreateTask(ctx, owner.ID, &req.TaskRequest{Title: "full", Description: "detailed", DueDate: &date})
	require.NoError(t, err)

	updated, err := f.tasks.UpdateTask(ctx, owner.ID, task.ID, &req.TaskRequest{Title: "bare"})
	require.NoError(t, err)
	require.Equal(t, "bare", updated.Title)
	require.Empty(t, updated.Description)
	require.Nil(t, updated.DueDate)
}

func TestCreateChatAddsCreatorAsMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "founders", CreatorID: creator.ID})
	require.NoError(t, err)

	members, err := f.chats.GetMembers(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, creator.ID, members[0].MemberID)
	require.Equal(t, "Creator", members[0].MemberName)
}

func TestAddMemberTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	joiner := registerUser(t, f, "Joiner")

	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "once", CreatorID: creator.ID})
	require.NoError(t, err)

	_, err = f.chats.AddMember(ctx, chat.ID, &req.AddMemberRequest{MemberID: joiner.ID})
	require.NoError(t, err)

	_, err = f.chats.AddMember(ctx, chat.ID, &req.AddMemberRequest{MemberID: joiner.ID})
	requireStatus(t, err, fiber.StatusConflict)
}

func TestMessagePostingRequiresMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	outsider := registerUser(t, f, "Outsider")

	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "gated", CreatorID: creator.ID})
	require.NoError(t, err)

	_, err = f.messages.CreateMessage(ctx, &req.MessageRequest{SenderID: outsider.ID, ChatID: chat.ID, Content: "let me in"}, nil)
	requireStatus(t, err, fiber.StatusForbidden)

	message, err := f.messages.CreateMessage(ctx, &req.MessageRequest{SenderID: creator.ID, ChatID: chat.ID, Content: "hello"}, nil)
	require.NoError(t, err)

	listed, err := f.messages.GetMessagesByChatID(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, message.ID, listed[0].MessageID)
	require.Equal(t, "Creator", listed[0].SenderName)
}

func TestAttachmentRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "files", CreatorID: creator.ID})
	require.NoError(t, err)

	payload := []byte("meeting notes\nline two")
	message, err := f.messages.CreateMessage(ctx,
		&req.MessageRequest{SenderID: creator.ID, ChatID: chat.ID},
		&usecase.Attachment{Data: payload, FileName: "notes.txt", FileType: "text/plain"})
	require.NoError(t, err)

	stored, err := f.messages.GetAttachment(ctx, message.ID)
	require.NoError(t, err)
	require.Equal(t, payload, stored.FileData)
	require.Equal(t, "notes.txt", stored.FileName)
	require.Equal(t, "text/plain", stored.FileType)

	textOnly, err := f.messages.CreateMessage(ctx, &req.MessageRequest{SenderID: creator.ID, ChatID: chat.ID, Content: "no file"}, nil)
	require.NoError(t, err)
	_, err = f.messages.GetAttachment(ctx, textOnly.ID)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestDeleteChatCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "doomed", CreatorID: creator.ID})
	require.NoError(t, err)

	_, err = f.messages.CreateMessage(ctx, &req.MessageRequest{SenderID: creator.ID, ChatID: chat.ID, Content: "bye"}, nil)
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, creator.ID, &req.TaskRequest{Title: "survivor", ChatID: &chat.ID})
	require.NoError(t, err)

	require.NoError(t, f.chats.DeleteChat(ctx, chat.ID))

	_, err = f.chats.GetChat(ctx, chat.ID)
	requireStatus(t, err, fiber.StatusNotFound)

	var memberCount, messageCount int64
	require.NoError(t, f.db.Model(&entity.ChatMember{}).Where("chat_id = ?", chat.ID).Count(&memberCount).Error)
	require.NoError(t, f.db.Model(&entity.Message{}).Where("chat_id = ?", chat.ID).Count(&messageCount).Error)
	require.Zero(t, memberCount)
	require.Zero(t, messageCount)

	// the task outlives the chat with a nulled reference
	var survivor entity.Task
	require.NoError(t, f.db.Where("id = ?", task.ID).Take(&survivor).Error)
	require.Nil(t, survivor.ChatID)
}

func TestRemoveMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	creator := registerUser(t, f, "Creator")
	joiner := registerUser(t, f, "Joiner")

	chat, err := f.chats.CreateChat(ctx, &req.CreateChatRequest{ChatName: "revolving door", CreatorID: creator.ID})
	require.NoError(t, err)

	member, err := f.chats.AddMember(ctx, chat.ID, &req.AddMemberRequest{MemberID: joiner.ID})
	require.NoError(t, err)

	require.NoError(t, f.chats.RemoveMember(ctx, member.ID))

	err = f.chats.RemoveMember(ctx, member.ID)
	requireStatus(t, err, fiber.StatusNotFound)

	members, err := f.chats.GetMembers(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
}
