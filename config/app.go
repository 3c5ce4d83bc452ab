package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"taskchat-api/config/common"
	applogger "taskchat-api/config/logger"
	"taskchat-api/handler"
	"taskchat-api/middleware"
	"taskchat-api/repository"
	"taskchat-api/routes"
	"taskchat-api/security"
	"taskchat-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogrus()
	appLog := applogger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log, appLog)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(newMiddleware.AccessLog)

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newTaskRepository := repository.NewTaskRepository()
	newChatRepository := repository.NewChatRepository()
	newMessageRepository := repository.NewMessageRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newTaskUsecase := usecase.NewTaskUsecase(newTaskRepository, newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newTaskHandler := handler.NewTaskHandler(newTaskUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		TaskHandler:    newTaskHandler,
		ChatHandler:    newChatHandler,
		MessageHandler: newMessageHandler,
	}
	route.GetRoute()
}
