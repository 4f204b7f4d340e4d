package shipping

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/shipping/methods", h.methods)
	app.Post("/api/shipping/calculate", h.calculate)
	app.Put("/api/shipping/:orderId<[0-9]+>/status", h.updateStatus)
}

func (h *Handler) methods(c *fiber.Ctx) error {
	total, _ := strconv.ParseFloat(c.Query("orderTotal"), 64)
	return c.JSON(h.service.Methods(total))
}

type calculateRequest struct {
	Method     string  `json:"method"`
	OrderTotal float64 `json:"orderTotal"`
}

func (h *Handler) calculate(c *fiber.Ctx) error {
	payload := new(calculateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	quote, err := h.service.Calculate(payload.Method, payload.OrderTotal)
	if err != nil {
		if err == ErrInvalidMethod {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid shipping method"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(quote)
}

type updateStatusRequest struct {
	Status          string  `json:"status"`
	CurrentLocation *string `json:"currentLocation,omitempty"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status is required"})
	}

	sh, err := h.service.UpdateStatus(orderID, payload.Status, payload.CurrentLocation)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Shipment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Shipment updated successfully", "shipment": sh})
}
