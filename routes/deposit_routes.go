package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/handlers"
	"github.com/virtuixrw/backend/middleware"
)

func DepositRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	deposits := api.Group("/deposits", middleware.Protected())
	deposits.Get("/amounts", handlers.ListDepositAmounts)
	deposits.Post("", handlers.SubmitDeposit)
	deposits.Get("", handlers.MyDeposits)

	withdrawals := api.Group("/withdrawals", middleware.Protected())
	withdrawals.Post("", handlers.RequestWithdrawal)
	withdrawals.Get("", handlers.MyWithdrawals)
}
