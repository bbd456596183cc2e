package routes

import (
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func CatalogRoutes(app *fiber.App, catalog *handlers.CatalogHandler) {
	api := app.Group("/api/v1/catalog", middleware.Protected(), middleware.StaffRequired())

	api.Get("/tracks", catalog.ListTracks)
	api.Get("/tracks/:track/strands", catalog.ListStrands)
	api.Get("/strands", catalog.ListAllStrands)
	api.Get("/fees", catalog.GetFees)

	admin := app.Group("/api/v1/catalog", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/tracks", catalog.AddTrack)
	admin.Delete("/tracks/:track", catalog.RemoveTrack)
	admin.Post("/strands", catalog.AddStrand)
	admin.Delete("/tracks/:track/strands/:strand", catalog.RemoveStrand)
	admin.Put("/fees", catalog.SetFees)
}
