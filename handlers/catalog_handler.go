package handlers

import (
	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

type TrackRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

type StrandRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Track string `json:"track" validate:"required"`
}

type FeeRequest struct {
	Track            string          `json:"track" validate:"required"`
	Strand           string          `json:"strand"`
	EnrollmentFee    decimal.Decimal `json:"enrollment_fee"`
	MiscellaneousFee decimal.Decimal `json:"miscellaneous_fee"`
	TuitionFee       decimal.Decimal `json:"tuition_fee"`
	SpecialFee       decimal.Decimal `json:"special_fee"`
}

func (h *CatalogHandler) ListTracks(c *fiber.Ctx) error {
	tracks, err := h.Catalog.ListTracks()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"tracks": tracks})
}

func (h *CatalogHandler) AddTrack(c *fiber.Ctx) error {
	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Catalog.AddTrack(req.Name, req.Description); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Track created"})
}

func (h *CatalogHandler) RemoveTrack(c *fiber.Ctx) error {
	if err := h.Catalog.RemoveTrack(c.Params("track")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Track removed"})
}

func (h *CatalogHandler) ListStrands(c *fiber.Ctx) error {
	strands, err := h.Catalog.ListStrands(c.Params("track"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"strands": strands})
}

func (h *CatalogHandler) ListAllStrands(c *fiber.Ctx) error {
	strands, err := h.Catalog.ListAllStrands()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"strands": strands})
}

func (h *CatalogHandler) AddStrand(c *fiber.Ctx) error {
	var req StrandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Catalog.AddStrand(req.Name, req.Track); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Strand created"})
}

func (h *CatalogHandler) RemoveStrand(c *fiber.Ctx) error {
	if err := h.Catalog.RemoveStrand(c.Params("strand"), c.Params("track")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Strand removed"})
}

func (h *CatalogHandler) GetFees(c *fiber.Ctx) error {
	track := c.Query("track")
	if track == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "track is required"})
	}
	return c.JSON(h.Catalog.GetFees(track, c.Query("strand")))
}

func (h *CatalogHandler) SetFees(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.EnrollmentFee.IsNegative() || req.MiscellaneousFee.IsNegative() ||
		req.TuitionFee.IsNegative() || req.SpecialFee.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fees must be non-negative"})
	}

	err := h.Catalog.SetFees(req.Track, req.Strand,
		req.EnrollmentFee, req.MiscellaneousFee, req.TuitionFee, req.SpecialFee)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fee schedule updated"})
}
