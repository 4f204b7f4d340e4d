package payment

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	razorpay *RazorpayClient
	stripe   *StripeClient
}

func NewHandler(razorpay *RazorpayClient, stripe *StripeClient) *Handler {
	return &Handler{razorpay: razorpay, stripe: stripe}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/payment/create", h.createRazorpayOrder)
	app.Post("/api/payment/verify", h.verifyRazorpay)
	app.Post("/api/payment/stripe/create-intent", h.createStripeIntent)
}

type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

func (h *Handler) createRazorpayOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "amount must be positive"})
	}

	ord, err := h.razorpay.CreateOrder(payload.Amount, payload.Currency)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Payment order creation failed"})
	}
	return c.JSON(ord)
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (h *Handler) verifyRazorpay(c *fiber.Ctx) error {
	payload := new(verifyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.RazorpayOrderID == "" || payload.RazorpayPaymentID == "" || payload.RazorpaySignature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "orderId, paymentId and signature are required"})
	}

	if !h.razorpay.VerifySignature(payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"verified": false, "message": "Invalid payment signature"})
	}
	return c.JSON(fiber.Map{"verified": true, "message": "Payment verified successfully"})
}

func (h *Handler) createStripeIntent(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "amount must be positive"})
	}

	intent, err := h.stripe.CreateIntent(payload.Amount, payload.Currency)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Payment intent creation failed"})
	}
	return c.JSON(intent)
}
