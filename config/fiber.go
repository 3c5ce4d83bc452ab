package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"taskchat-api/config/common"
	"taskchat-api/dto/res"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		BodyLimit:     10 * 1024 * 1024,
		ErrorHandler:  errorHandler,
	})
}

// errorHandler maps classified failures onto the error envelope: validator
// errors become 400, *fiber.Error keeps its code, anything else is a 500
// with the error text in the body.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message

	var validationErrs validator.ValidationErrors
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErrs):
		code = fiber.StatusBadRequest
		message = fiber.ErrBadRequest.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(res.ErrorResponse{
		Status:     message,
		StatusCode: code,
		Error:      err.Error(),
	})
}
