package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskchat-api/dto/req"
	"taskchat-api/entity"
	"taskchat-api/repository"
)

type TaskUsecaseImpl struct {
	*repository.TaskRepository
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewTaskUsecase(taskRepository *repository.TaskRepository, chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) TaskUsecase {
	return &TaskUsecaseImpl{TaskRepository: taskRepository, ChatRepository: chatRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *TaskUsecaseImpl) CreateTask(ctx context.Context, callerID string, request *req.TaskRequest) (*entity.Task, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate task request: %v", err)
		return nil, err
	}

	ownerID := request.OwnerID
	if ownerID == "" {
		ownerID = callerID
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	newTask := &entity.Task{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
		DueTime:     request.DueTime,
		OwnerID:     ownerID,
		ChatID:      request.ChatID,
	}

	if err := uc.TaskRepository.Save(ctx, trx, newTask); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fiber.NewError(fiber.StatusNotFound, "owner or chat not found")
		}
		uc.Logger.WithError(err).Errorf("failed to save task: %v", err)
		return nil, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit task: %v", err)
		return nil, err
	}

	uc.Logger.Infof("Task created with id: %s", newTask.ID)
	return newTask, nil
}

func (uc *TaskUsecaseImpl) UpdateTask(ctx context.Context, callerID, taskID string, request *req.TaskRequest) (*entity.Task, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate task request: %v", err)
		return nil, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	task, err := uc.findAuthorized(ctx, trx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	// full-row overwrite: fields absent from the request null out
	task.Title = request.Title
	task.Description = request.Description
	task.DueDate = request.DueDate
	task.DueTime = request.DueTime
	task.ChatID = request.ChatID
	if request.OwnerID != "" {
		task.OwnerID = request.OwnerID
	}

	if err := uc.TaskRepository.Update(ctx, trx, task); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fiber.NewError(fiber.StatusNotFound, "owner or chat not found")
		}
		uc.Logger.WithError(err).Errorf("failed to update task: %v", err)
		return nil, err
	}

	if err := trx.Commit().Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (uc *TaskUsecaseImpl) DeleteTask(ctx context.Context, callerID, taskID string) error {
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	task, err := uc.findAuthorized(ctx, trx, callerID, taskID)
	if err != nil {
		return err
	}

	if err := uc.TaskRepository.Delete(ctx, trx, task); err != nil {
		uc.Logger.WithError(err).Errorf("failed to delete task: %v", err)
		return err
	}

	return trx.Commit().Error
}

func (uc *TaskUsecaseImpl) GetTasksForUser(ctx context.Context, userID string) ([]entity.Task, error) {
	tasks, err := uc.TaskRepository.FindVisibleByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list tasks for user %s: %v", userID, err)
		return nil, err
	}
	return tasks, nil
}

// findAuthorized loads a task and checks the mutation policy: the caller must
// be the owner or a member of the task's chat.
func (uc *TaskUsecaseImpl) findAuthorized(ctx context.Context, db *gorm.DB, callerID, taskID string) (*entity.Task, error) {
	var task entity.Task
	if err := uc.TaskRepository.FindById(ctx, db, &task, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "task not found")
		}
		return nil, err
	}

	if task.OwnerID == callerID {
		return &task, nil
	}

	if task.ChatID != nil {
		isMember, err := uc.ChatRepository.IsMember(ctx, db, *task.ChatID, callerID)
		if err != nil {
			return nil, err
		}
		if isMember {
			return &task, nil
		}
	}

	uc.Logger.Warnf("user %s is not allowed to modify task %s", callerID, taskID)
	return nil, fiber.NewError(fiber.StatusForbidden, "not the owner or a chat member of this task")
}
