package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, admin *handlers.AdminHandler) {
	api := app.Group("/api/v1/admin", middleware.Protected(), middleware.AdminRequired())

	api.Get("/audit", admin.AuditLog)
	api.Delete("/data", admin.ClearData)
}
