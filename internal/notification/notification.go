package notification

import "time"

// OrderConfirmation is the event published after an order is created.
// Delivery (mail, push, ...) is handled by downstream consumers.
type OrderConfirmation struct {
	OrderID           int        `json:"orderId"`
	UserID            int        `json:"userId"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Total             float64    `json:"total"`
	TrackingNumber    string     `json:"trackingNumber"`
	ShippingMethod    string     `json:"shippingMethod"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Notifier publishes best-effort notifications. Callers log failures and
// never let them fail the surrounding request.
type Notifier interface {
	OrderConfirmed(ev OrderConfirmation) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) OrderConfirmed(OrderConfirmation) error { return nil }
func (Noop) Close() error                           { return nil }
