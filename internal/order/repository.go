package order

import (
	"errors"

	"github.com/noiratelier/storefront-backend/internal/shipping"
)

var ErrNotFound = errors.New("order not found")

// LineItem is the caller's shape for one requested order line.
type LineItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

type Repository interface {
	// Create persists the order, its line items and its shipment in one
	// transaction. Line items whose product does not resolve are skipped
	// without error.
	Create(ord Order, items []LineItem, sh shipping.Shipment) (Order, shipping.Shipment, error)
	// GetByID loads the order header only.
	GetByID(id int) (Order, error)
	// GetDetail loads the order with line items (product details
	// attached) and shipment.
	GetDetail(id int) (Order, error)
	// ListByUser returns a user's orders, newest first, each with line
	// items and shipment.
	ListByUser(userID int) ([]Order, error)
	// UpdateStatus sets the order status unconditionally.
	UpdateStatus(id int, status string) (Order, error)
}
