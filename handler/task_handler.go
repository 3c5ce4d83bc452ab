package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
	"taskchat-api/usecase"
)

type TaskHandler struct {
	usecase.TaskUsecase
	*logrus.Logger
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{TaskUsecase: taskUsecase, Logger: logger}
}

func callerID(ctx *fiber.Ctx) string {
	userID, _ := ctx.Locals("user_id").(string)
	return userID
}

func (handler *TaskHandler) CreateTask(ctx *fiber.Ctx) error {
	payload := new(req.TaskRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	task, err := handler.TaskUsecase.CreateTask(ctx.Context(), callerID(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create task: %v", err)
		return err
	}

	response := res.CommonResponse[*entity.Task]{
		Message:    "Successfully created task",
		StatusCode: fiber.StatusCreated,
		Data:       task,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *TaskHandler) UpdateTask(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskId")

	payload := new(req.TaskRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	task, err := handler.TaskUsecase.UpdateTask(ctx.Context(), callerID(ctx), taskID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to update task %s: %v", taskID, err)
		return err
	}

	response := res.CommonResponse[*entity.Task]{
		Message:    "Successfully updated task",
		StatusCode: fiber.StatusOK,
		Data:       task,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *TaskHandler) DeleteTask(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskId")

	if err := handler.TaskUsecase.DeleteTask(ctx.Context(), callerID(ctx), taskID); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to delete task %s: %v", taskID, err)
		return err
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully deleted task",
		StatusCode: fiber.StatusOK,
		Data:       taskID,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *TaskHandler) GetTasksForUser(ctx *fiber.Ctx) error {
	userID := ctx.Params("userId")

	tasks, err := handler.TaskUsecase.GetTasksForUser(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to list tasks for user %s: %v", userID, err)
		return err
	}

	response := res.CommonResponse[[]entity.Task]{
		Message:    "Successfully listed tasks",
		StatusCode: fiber.StatusOK,
		Data:       tasks,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
