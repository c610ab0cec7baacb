package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/handlers"
	"github.com/virtuixrw/backend/middleware"
)

func WalletRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Protected())
	wallet.Get("/balances", handlers.GetBalances)
	wallet.Get("/transactions", handlers.GetTransactionHistory)
	wallet.Post("/transfer", handlers.TransferToBlack)

	checkins := api.Group("/checkins", middleware.Protected())
	checkins.Post("/claim", handlers.ClaimCheckIn)
}
