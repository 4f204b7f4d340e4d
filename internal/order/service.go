package order

import (
	"log"
	"time"

	"github.com/noiratelier/storefront-backend/internal/notification"
	"github.com/noiratelier/storefront-backend/internal/shipping"
	"github.com/noiratelier/storefront-backend/internal/user"
)

// CreateInput carries everything a checkout submits for a new order.
type CreateInput struct {
	UserID          int
	Items           []LineItem
	Total           float64
	ShippingAddress *string
	ShippingCity    *string
	ShippingState   *string
	ShippingZip     *string
	ShippingCountry string
	ShippingPhone   *string
	ShippingMethod  string
	ShippingCost    float64
	PaymentMethod   string
	PaymentDetails  *string
}

// Tracking is the answer to a tracking enquiry: the order header plus its
// shipment with the full event log. Shipment is nil when the order has no
// shipment row.
type Tracking struct {
	Order    Order              `json:"order"`
	Shipment *shipping.Shipment `json:"shipment"`
}

type ServiceInterface interface {
	Create(in CreateInput) (Order, shipping.Shipment, error)
	ListByUser(userID int) ([]Order, error)
	GetTracking(orderID int) (Tracking, error)
	TrackByNumber(trackingNumber string) (Tracking, error)
	UpdateStatus(orderID int, status string) (Order, error)
	Cancel(orderID int) (Order, error)
}

type Service struct {
	repo      Repository
	shipments shipping.Repository
	users     user.Repository
	notifier  notification.Notifier
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, shipments shipping.Repository, users user.Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, shipments: shipments, users: users, notifier: notifier}
}

// Create builds the order aggregate: a tracking number and carrier are
// assigned up front, the order, its line items and the shipment (seeded
// with a pending event) are written in one transaction, and a
// confirmation is published best-effort afterwards.
func (s *Service) Create(in CreateInput) (Order, shipping.Shipment, error) {
	u, err := s.users.GetByID(in.UserID)
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}

	now := time.Now()
	trackingNumber := shipping.GenerateTrackingNumber()
	carrier, deliveryDays := shipping.ResolveCarrier(in.ShippingMethod)
	estimated := now.AddDate(0, 0, deliveryDays)

	country := in.ShippingCountry
	if country == "" {
		country = "USA"
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "razorpay"
	}

	ord := Order{
		UserID:            in.UserID,
		Total:             in.Total,
		Status:            StatusPending,
		ShippingAddress:   in.ShippingAddress,
		ShippingCity:      in.ShippingCity,
		ShippingState:     in.ShippingState,
		ShippingZip:       in.ShippingZip,
		ShippingCountry:   country,
		ShippingPhone:     in.ShippingPhone,
		ShippingMethod:    in.ShippingMethod,
		ShippingCost:      in.ShippingCost,
		TrackingNumber:    trackingNumber,
		Carrier:           carrier,
		EstimatedDelivery: &estimated,
		PaymentMethod:     paymentMethod,
		PaymentDetails:    in.PaymentDetails,
	}

	sh := shipping.Shipment{
		TrackingNumber:    trackingNumber,
		Carrier:           carrier,
		Status:            shipping.StatusPending,
		EstimatedDelivery: &estimated,
		TrackingEvents: []shipping.TrackingEvent{{
			Status:      shipping.StatusPending,
			Location:    "Order Received",
			Timestamp:   now,
			Description: "Order has been received and is being processed",
		}},
	}

	created, createdShipment, err := s.repo.Create(ord, in.Items, sh)
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}

	if err := s.notifier.OrderConfirmed(notification.OrderConfirmation{
		OrderID:           created.ID,
		UserID:            u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Total:             created.Total,
		TrackingNumber:    created.TrackingNumber,
		ShippingMethod:    created.ShippingMethod,
		EstimatedDelivery: created.EstimatedDelivery,
		CreatedAt:         created.CreatedAt,
	}); err != nil {
		log.Printf("order %d: confirmation publish failed: %v", created.ID, err)
	}

	return created, createdShipment, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) GetTracking(orderID int) (Tracking, error) {
	ord, err := s.repo.GetDetail(orderID)
	if err != nil {
		return Tracking{}, err
	}
	return Tracking{Order: ord, Shipment: ord.Shipment}, nil
}

func (s *Service) TrackByNumber(trackingNumber string) (Tracking, error) {
	sh, err := s.shipments.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return Tracking{}, err
	}
	ord, err := s.repo.GetDetail(sh.OrderID)
	if err != nil {
		return Tracking{}, err
	}
	return Tracking{Order: ord, Shipment: &sh}, nil
}

// UpdateStatus moves the order to the given status and mirrors the change
// onto the shipment with a "Processing Center" event. Any in-vocabulary
// transition is allowed.
func (s *Service) UpdateStatus(orderID int, status string) (Order, error) {
	ord, err := s.repo.UpdateStatus(orderID, status)
	if err != nil {
		return Order{}, err
	}

	if mapped, ok := shipmentStatusFor[status]; ok {
		if err := s.appendShipmentEvent(orderID, mapped, "Processing Center", "Order status updated to "+status); err != nil {
			return Order{}, err
		}
	}
	return ord, nil
}

// Cancel rejects orders that already shipped, were delivered, or are
// cancelled; anything else moves to cancelled with a matching shipment
// event.
func (s *Service) Cancel(orderID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	switch ord.Status {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return Order{}, &NotCancellableError{Status: ord.Status}
	}

	ord, err = s.repo.UpdateStatus(orderID, StatusCancelled)
	if err != nil {
		return Order{}, err
	}
	if err := s.appendShipmentEvent(orderID, shipping.StatusCancelled, "Order Cancelled", "Order has been cancelled by customer"); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (s *Service) appendShipmentEvent(orderID int, status, location, description string) error {
	sh, err := s.shipments.GetByOrderID(orderID)
	if err != nil {
		if err == shipping.ErrNotFound {
			return nil
		}
		return err
	}
	sh.Status = status
	sh.TrackingEvents = append(sh.TrackingEvents, shipping.TrackingEvent{
		Status:      status,
		Location:    location,
		Timestamp:   time.Now(),
		Description: description,
	})
	if status == shipping.StatusDelivered {
		now := time.Now()
		sh.ActualDelivery = &now
	}
	_, err = s.shipments.Save(sh)
	return err
}
