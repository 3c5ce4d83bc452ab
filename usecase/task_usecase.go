package usecase

import (
	"context"

	"taskchat-api/dto/req"
	"taskchat-api/entity"
)

type TaskUsecase interface {
	CreateTask(ctx context.Context, callerID string, request *req.TaskRequest) (*entity.Task, error)
	UpdateTask(ctx context.Context, callerID, taskID string, request *req.TaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, callerID, taskID string) error
	GetTasksForUser(ctx context.Context, userID string) ([]entity.Task, error)
}
