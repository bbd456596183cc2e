package handlers

import (
	"strconv"

	"github.com/enrollify/enrollment-api/models"
	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	Payments *services.PaymentService
	Fees     *services.FeeService
}

func NewPaymentHandler(payments *services.PaymentService, fees *services.FeeService) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Fees: fees}
}

type PaymentRequest struct {
	LRN           string          `json:"lrn" validate:"required,len=12,numeric"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
}

func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, quote, err := h.Payments.RecordPayment(req.LRN, req.Amount, models.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment": payment,
		"quote":   quote,
	})
}

func (h *PaymentHandler) ListByStudent(c *fiber.Ctx) error {
	payments, err := h.Payments.GetByLRN(c.Params("lrn"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) GetReceipt(c *fiber.Ctx) error {
	receipt, err := h.Payments.GetReceipt(c.Params("number"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(receipt)
}

// ListReceipts serves both plain listing and substring search.
func (h *PaymentHandler) ListReceipts(c *fiber.Ctx) error {
	if query := c.Query("search"); query != "" {
		receipts, err := h.Payments.SearchReceipts(query)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(receipts)
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	receipts, err := h.Payments.ListReceipts(limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(receipts)
}

func (h *PaymentHandler) Quote(c *fiber.Ctx) error {
	track := c.Query("track")
	if track == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "track is required"})
	}
	return c.JSON(h.Fees.Quote(track, c.Query("strand")))
}
