package handlers

import (
	"strconv"

	"github.com/enrollify/enrollment-api/middleware"
	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Audit       *services.AuditService
	Maintenance *services.MaintenanceService
}

func NewAdminHandler(audit *services.AuditService, maintenance *services.MaintenanceService) *AdminHandler {
	return &AdminHandler{Audit: audit, Maintenance: maintenance}
}

func (h *AdminHandler) AuditLog(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.Audit.Recent(limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(entries)
}

func (h *AdminHandler) ClearData(c *fiber.Ctx) error {
	if err := h.Maintenance.ClearAllData(middleware.UserEmail(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "All student, payment, and audit data cleared"})
}
