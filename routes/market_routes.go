package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/handlers"
	"github.com/virtuixrw/backend/middleware"
)

func MarketRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/tokens/catalog", handlers.ListTokenCatalog)

	tokens := api.Group("/tokens", middleware.Protected())
	tokens.Post("/purchase/:tierId", handlers.PurchaseToken)
	tokens.Get("/mine", handlers.MyActiveTokens)

	api.Get("/referrals", middleware.Protected(), handlers.MyReferrals)

	rooms := api.Group("/rooms", middleware.Protected())
	rooms.Get("", handlers.ListRooms)
	rooms.Post("", handlers.CreateRoom)
	rooms.Post("/:roomId/join", handlers.JoinRoom)
}
