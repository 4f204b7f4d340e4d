package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/noiratelier/storefront-backend/internal/shipping"
	"github.com/noiratelier/storefront-backend/internal/user"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes also owns the track-by-number route: resolving a
// tracking number needs the order aggregate, which shipping has no view of.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.create)
	app.Get("/api/orders/:userId<[0-9]+>", h.listByUser)
	app.Get("/api/orders/:orderId<[0-9]+>/tracking", h.tracking)
	app.Put("/api/orders/:orderId<[0-9]+>/status", h.updateStatus)
	app.Put("/api/orders/:orderId<[0-9]+>/cancel", h.cancel)
	app.Get("/api/shipping/track-number/:trackingNumber", h.trackByNumber)
}

type createRequest struct {
	UserID          int        `json:"userId"`
	Items           []LineItem `json:"items"`
	Total           float64    `json:"total"`
	ShippingAddress *string    `json:"shippingAddress"`
	ShippingCity    *string    `json:"shippingCity"`
	ShippingState   *string    `json:"shippingState"`
	ShippingZip     *string    `json:"shippingZip"`
	ShippingCountry string     `json:"shippingCountry"`
	ShippingPhone   *string    `json:"shippingPhone"`
	ShippingMethod  string     `json:"shippingMethod"`
	ShippingCost    float64    `json:"shippingCost"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentDetails  *string    `json:"paymentDetails"`
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId is required"})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "items are required"})
	}

	ord, sh, err := h.service.Create(CreateInput{
		UserID:          payload.UserID,
		Items:           payload.Items,
		Total:           payload.Total,
		ShippingAddress: payload.ShippingAddress,
		ShippingCity:    payload.ShippingCity,
		ShippingState:   payload.ShippingState,
		ShippingZip:     payload.ShippingZip,
		ShippingCountry: payload.ShippingCountry,
		ShippingPhone:   payload.ShippingPhone,
		ShippingMethod:  payload.ShippingMethod,
		ShippingCost:    payload.ShippingCost,
		PaymentMethod:   payload.PaymentMethod,
		PaymentDetails:  payload.PaymentDetails,
	})
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Order created successfully",
		"order":          ord,
		"shipment":       sh,
		"trackingNumber": ord.TrackingNumber,
	})
}

func (h *Handler) listByUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) tracking(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	tr, err := h.service.GetTracking(orderID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(tr)
}

func (h *Handler) trackByNumber(c *fiber.Ctx) error {
	tr, err := h.service.TrackByNumber(c.Params("trackingNumber"))
	if err != nil {
		if err == shipping.ErrNotFound || err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tracking number not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(tr)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !ValidStatus(payload.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order status"})
	}

	ord, err := h.service.UpdateStatus(orderID, payload.Status)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully", "order": ord})
}

func (h *Handler) cancel(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.Cancel(orderID)
	if err != nil {
		var notCancellable *NotCancellableError
		if errors.As(err, &notCancellable) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": notCancellable.Error()})
		}
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Order cancelled successfully", "order": ord})
}
