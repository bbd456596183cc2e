package main

import (
	"log"
	"time"

	config "github.com/enrollify/enrollment-api/configs"
	"github.com/enrollify/enrollment-api/database"
	"github.com/enrollify/enrollment-api/handlers"
	"github.com/enrollify/enrollment-api/jobs"
	"github.com/enrollify/enrollment-api/routes"
	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("🔥 Failed to seed catalog: %v", err)
	}

	auditService := services.NewAuditService(db)
	catalogService := services.NewCatalogService(db, auditService)
	studentService := services.NewStudentService(db, catalogService, auditService)
	feeService := services.NewFeeService(catalogService)
	paymentService := services.NewPaymentService(db, feeService, auditService)
	statsService := services.NewStatsService(db)
	authService := services.NewAuthService(db, auditService)
	maintenanceService := services.NewMaintenanceService(db, auditService)

	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	studentHandler := handlers.NewStudentHandler(studentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, feeService)
	statsHandler := handlers.NewStatsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(auditService, maintenanceService)

	digest := jobs.NewEnrollmentDigest(statsService, auditService)
	c := cron.New()
	c.AddFunc("0 6 * * *", digest.Run)
	go c.Start()
	log.Println("✅ Cron job for enrollment digest scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Enrollment Records API",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.AuthRoutes(app, authHandler)
	routes.CatalogRoutes(app, catalogHandler)
	routes.StudentRoutes(app, studentHandler)
	routes.PaymentRoutes(app, paymentHandler)
	routes.StatsRoutes(app, statsHandler)
	routes.AdminRoutes(app, adminHandler)

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
