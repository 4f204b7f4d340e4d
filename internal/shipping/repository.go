package shipping

import "errors"

var ErrNotFound = errors.New("shipment not found")

type Repository interface {
	GetByOrderID(orderID int) (Shipment, error)
	GetByTrackingNumber(trackingNumber string) (Shipment, error)
	// Save writes the mutable shipment fields (status, location, event
	// log, actual delivery). The event log only ever grows.
	Save(sh Shipment) (Shipment, error)
}
