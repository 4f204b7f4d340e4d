package shipping

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment statuses. The vocabulary is shipment-specific and distinct from
// order statuses; order statuses are mapped onto it by the order workflow.
const (
	StatusPending        = "pending"
	StatusProcessing     = "processing"
	StatusInTransit      = "in_transit"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// TrackingEvent is one append-only entry in a shipment's history. Events
// are never removed or rewritten.
type TrackingEvent struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// Shipment is created together with its order and shares its lifecycle.
type Shipment struct {
	ID                int             `json:"id"`
	OrderID           int             `json:"orderId"`
	TrackingNumber    string          `json:"trackingNumber"`
	Carrier           string          `json:"carrier"`
	Status            string          `json:"status"`
	CurrentLocation   *string         `json:"currentLocation,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	TrackingEvents    []TrackingEvent `json:"trackingEvents"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Method describes one entry of the static shipping-method table.
type Method struct {
	ID      string
	Name    string
	Cost    decimal.Decimal
	MinDays int
	MaxDays int
	Carrier string
}

const (
	// DefaultCarrier labels shipments whose method is not in the table.
	DefaultCarrier = "Standard Carrier"
	// DefaultDeliveryDays is the delivery offset for unknown methods.
	DefaultDeliveryDays = 7

	// FreeShippingThreshold is the order total at which standard
	// shipping becomes free.
	FreeShippingThreshold = 100
)

var methods = []Method{
	{ID: "standard", Name: "Standard Shipping", Cost: decimal.NewFromFloat(5.99), MinDays: 5, MaxDays: 7, Carrier: "USPS"},
	{ID: "express", Name: "Express Shipping", Cost: decimal.NewFromFloat(12.99), MinDays: 2, MaxDays: 3, Carrier: "FedEx"},
	{ID: "overnight", Name: "Overnight Shipping", Cost: decimal.NewFromFloat(24.99), MinDays: 1, MaxDays: 1, Carrier: "UPS"},
}

// LookupMethod returns the table entry for the given id.
func LookupMethod(id string) (Method, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

// ResolveCarrier maps a shipping method to its carrier label and delivery
// offset. Unknown methods fall back to the default carrier and a 7-day
// offset instead of failing.
func ResolveCarrier(methodID string) (carrier string, deliveryDays int) {
	if m, ok := LookupMethod(methodID); ok {
		return m.Carrier, m.MaxDays
	}
	return DefaultCarrier, DefaultDeliveryDays
}

var statusDescriptions = map[string]string{
	StatusPending:        "Order received and being processed",
	StatusProcessing:     "Package is being prepared for shipment",
	StatusInTransit:      "Package is on the way",
	StatusOutForDelivery: "Package is out for delivery",
	StatusDelivered:      "Package has been delivered",
}

// StatusDescription returns the canned event description for a shipment
// status, or a generic fallback for values outside the vocabulary.
func StatusDescription(status string) string {
	if d, ok := statusDescriptions[status]; ok {
		return d
	}
	return "Status updated"
}
