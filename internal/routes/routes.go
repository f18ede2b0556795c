package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dogusotomat/dogi-support-backend/internal/handlers"
	"github.com/dogusotomat/dogi-support-backend/internal/middleware"
	"github.com/dogusotomat/dogi-support-backend/internal/services"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, chatService *services.ChatService) {
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(store)

	// Health check
	app.Get("/health", handlers.HandleHealth)

	// Chat widget API
	api := app.Group("/api")
	chat := api.Group("/chat")
	chat.Post("/", chatHandler.HandleMessage)
	chat.Get("/status", chatHandler.HandleStatus)
	chat.Post("/clear", chatHandler.HandleClear)
	chat.Get("/transcript", chatHandler.HandleTranscript)

	// Back-office routes
	admin := app.Group("/admin", middleware.RequireAPIKey())
	admin.Get("/cases", adminHandler.ListCases)
	admin.Get("/cases/:id", adminHandler.GetCase)
	admin.Patch("/cases/:id", adminHandler.UpdateCase)
}
