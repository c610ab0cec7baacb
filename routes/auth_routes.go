package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/handlers"
	"github.com/virtuixrw/backend/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/auth/register", handlers.RegisterUser)
	api.Post("/auth/login", handlers.LoginUser)
	api.Get("/profile", middleware.Protected(), handlers.GetProfile)
}
