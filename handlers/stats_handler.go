package handlers

import (
	"strconv"

	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	Stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.Stats.Overview()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(overview)
}

func (h *StatsHandler) ByTrack(c *fiber.Ctx) error {
	counts, err := h.Stats.CountByTrack()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

func (h *StatsHandler) ByGrade(c *fiber.Ctx) error {
	counts, err := h.Stats.CountByGrade()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

func (h *StatsHandler) ByStrand(c *fiber.Ctx) error {
	topN, _ := strconv.Atoi(c.Query("top"))
	counts, err := h.Stats.CountByStrand(topN)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

func (h *StatsHandler) ByStatus(c *fiber.Ctx) error {
	counts, err := h.Stats.CountByStatus()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

func (h *StatsHandler) Gender(c *fiber.Ctx) error {
	counts, err := h.Stats.GenderDistribution()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

func (h *StatsHandler) Recent(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive integer"})
	}

	count, err := h.Stats.RecentEnrollments(days)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "count": count})
}
