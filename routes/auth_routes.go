package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, auth *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	api.Post("/auth/login", auth.Login)

	users := api.Group("/auth/users", middleware.Protected(), middleware.AdminRequired())
	users.Post("", auth.CreateUser)

	api.Get("/staff", middleware.Protected(), middleware.StaffRequired(), auth.ListStaff)
}
