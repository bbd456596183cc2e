package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, payments *handlers.PaymentHandler) {
	api := app.Group("/api/v1", middleware.Protected(), middleware.StaffRequired())

	api.Get("/fees/quote", payments.Quote)
	api.Post("/payments", payments.Record)
	api.Get("/students/:lrn/payments", payments.ListByStudent)
	api.Get("/receipts", payments.ListReceipts)
	api.Get("/receipts/:number", payments.GetReceipt)
}
