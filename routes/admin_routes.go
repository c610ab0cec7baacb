package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/handlers"
	"github.com/virtuixrw/backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/deposits/pending", handlers.ListPendingDeposits)
	admin.Post("/deposits/:depositId/confirm", handlers.ConfirmPendingDeposit)
	admin.Post("/deposits/:depositId/reject", handlers.RejectPendingDeposit)

	admin.Get("/withdrawals/pending", handlers.ListPendingWithdrawals)
	admin.Post("/withdrawals/:withdrawalId/process", handlers.ProcessWithdrawal)

	admin.Get("/users", handlers.AdminListUsers)
	admin.Post("/payouts/sweep", handlers.RunPayoutSweep)
}
