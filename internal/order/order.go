package order

import (
	"fmt"
	"time"

	"github.com/noiratelier/storefront-backend/internal/product"
	"github.com/noiratelier/storefront-backend/internal/shipping"
)

// Order statuses. Cancellation is only reachable from pending/processing;
// everything else is an unguarded setter (see UpdateStatus).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Statuses enumerates every valid order status.
var Statuses = []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// ValidStatus reports whether s is in the order-status vocabulary.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// shipmentStatusFor maps an order status onto the shipment vocabulary.
var shipmentStatusFor = map[string]string{
	StatusPending:    shipping.StatusPending,
	StatusProcessing: shipping.StatusProcessing,
	StatusShipped:    shipping.StatusInTransit,
	StatusDelivered:  shipping.StatusDelivered,
	StatusCancelled:  shipping.StatusCancelled,
}

// Item is one order line: a product reference with a quantity. Lines are
// immutable once the order exists.
type Item struct {
	ProductID int              `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *product.Product `json:"product,omitempty"`
}

// Order is the purchase aggregate. It is created atomically with its line
// items and shipment; status is the only field mutated afterwards.
type Order struct {
	ID                int                `json:"id"`
	UserID            int                `json:"userId"`
	Total             float64            `json:"total"`
	Status            string             `json:"status"`
	ShippingAddress   *string            `json:"shippingAddress,omitempty"`
	ShippingCity      *string            `json:"shippingCity,omitempty"`
	ShippingState     *string            `json:"shippingState,omitempty"`
	ShippingZip       *string            `json:"shippingZip,omitempty"`
	ShippingCountry   string             `json:"shippingCountry"`
	ShippingPhone     *string            `json:"shippingPhone,omitempty"`
	ShippingMethod    string             `json:"shippingMethod"`
	ShippingCost      float64            `json:"shippingCost"`
	TrackingNumber    string             `json:"trackingNumber"`
	Carrier           string             `json:"carrier"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time         `json:"actualDelivery,omitempty"`
	PaymentMethod     string             `json:"paymentMethod"`
	PaymentDetails    *string            `json:"paymentDetails,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	Items             []Item             `json:"items,omitempty"`
	Shipment          *shipping.Shipment `json:"shipment,omitempty"`
}

// NotCancellableError rejects cancellation from a terminal status; the
// message names the status that blocked it.
type NotCancellableError struct {
	Status string
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("Order cannot be cancelled. Current status: %s", e.Status)
}
