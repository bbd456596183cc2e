package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func StatsRoutes(app *fiber.App, stats *handlers.StatsHandler) {
	api := app.Group("/api/v1/stats", middleware.Protected(), middleware.StaffRequired())

	api.Get("/overview", stats.Overview)
	api.Get("/tracks", stats.ByTrack)
	api.Get("/grades", stats.ByGrade)
	api.Get("/strands", stats.ByStrand)
	api.Get("/status", stats.ByStatus)
	api.Get("/gender", stats.Gender)
	api.Get("/recent", stats.Recent)
}
