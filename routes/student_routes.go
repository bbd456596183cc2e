package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, students *handlers.StudentHandler) {
	api := app.Group("/api/v1/students", middleware.Protected(), middleware.StaffRequired())

	api.Get("", students.List)
	api.Post("", students.Create)
	api.Get("/unassigned", students.ListUnassigned)
	api.Get("/:lrn", students.Get)
	api.Put("/:lrn", students.Update)
	api.Delete("/:lrn", students.Delete)
	api.Patch("/:lrn/status", students.SetStatus)
	api.Post("/:lrn/staff", students.Assign)
	api.Delete("/:lrn/staff", students.Unassign)

	app.Get("/api/v1/staff/:staffId/students",
		middleware.Protected(), middleware.StaffRequired(), students.ListByStaff)
}
