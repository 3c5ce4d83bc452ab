package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskchat-api/handler"
	"taskchat-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.TaskHandler
	*handler.ChatHandler
	*handler.MessageHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/register", rc.AuthHandler.RegisterUser)
	app.Post("/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserID)

	app.Post("/tasks", rc.TaskHandler.CreateTask)
	app.Put("/tasks/:taskId", rc.TaskHandler.UpdateTask)
	app.Delete("/tasks/:taskId", rc.TaskHandler.DeleteTask)
	app.Get("/tasks/:userId", rc.TaskHandler.GetTasksForUser)

	app.Post("/chats", rc.ChatHandler.CreateChat)
	app.Get("/chats/:chatId", rc.ChatHandler.GetChat)
	app.Put("/chats/:chatId", rc.ChatHandler.UpdateChat)
	app.Delete("/chats/:chatId", rc.ChatHandler.DeleteChat)
	app.Get("/users/:userId/chats", rc.ChatHandler.GetChatsByUser)

	app.Post("/chats/:chatId/members", rc.ChatHandler.AddMember)
	app.Get("/chats/:chatId/members", rc.ChatHandler.GetMembers)
	app.Delete("/chats/members/:membershipId", rc.ChatHandler.RemoveMember)

	app.Post("/messages", rc.MessageHandler.CreateMessage)
	app.Get("/chats/:chatId/messages", rc.MessageHandler.GetMessagesByChatID)
	app.Get("/messages/:messageId/file", rc.MessageHandler.GetAttachment)
}
