package shipping

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMethod = errors.New("invalid shipping method")

// Quote is the per-method answer to a shipping cost enquiry.
type Quote struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Cost              float64   `json:"cost"`
	OriginalCost      float64   `json:"originalCost"`
	IsFree            bool      `json:"isFree"`
	MinDays           int       `json:"minDays"`
	MaxDays           int       `json:"maxDays"`
	Carrier           string    `json:"carrier"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// ServiceInterface is what the shipping handler and the order workflow
// consume.
type ServiceInterface interface {
	Methods(orderTotal float64) []Quote
	Calculate(methodID string, orderTotal float64) (Quote, error)
	GetByOrderID(orderID int) (Shipment, error)
	UpdateStatus(orderID int, status string, currentLocation *string) (Shipment, error)
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Methods(orderTotal float64) []Quote {
	out := make([]Quote, 0, len(methods))
	for _, m := range methods {
		out = append(out, quoteFor(m, orderTotal))
	}
	return out
}

func (s *Service) Calculate(methodID string, orderTotal float64) (Quote, error) {
	m, ok := LookupMethod(methodID)
	if !ok {
		return Quote{}, ErrInvalidMethod
	}
	return quoteFor(m, orderTotal), nil
}

func (s *Service) GetByOrderID(orderID int) (Shipment, error) {
	return s.repo.GetByOrderID(orderID)
}

func (s *Service) GetByTrackingNumber(trackingNumber string) (Shipment, error) {
	return s.repo.GetByTrackingNumber(trackingNumber)
}

// UpdateStatus applies a direct shipment-status update: appends an event
// with the canned description and stamps the actual delivery time when the
// shipment reaches delivered.
func (s *Service) UpdateStatus(orderID int, status string, currentLocation *string) (Shipment, error) {
	sh, err := s.repo.GetByOrderID(orderID)
	if err != nil {
		return Shipment{}, err
	}

	now := time.Now().UTC()
	location := ""
	if currentLocation != nil {
		location = *currentLocation
	}

	sh.Status = status
	sh.CurrentLocation = currentLocation
	sh.TrackingEvents = append(sh.TrackingEvents, TrackingEvent{
		Status:      status,
		Location:    location,
		Timestamp:   now,
		Description: StatusDescription(status),
	})
	if status == StatusDelivered && sh.ActualDelivery == nil {
		sh.ActualDelivery = &now
	}

	return s.repo.Save(sh)
}

// free shipping applies to the standard method only
func quoteFor(m Method, orderTotal float64) Quote {
	total := decimal.NewFromFloat(orderTotal)
	isFree := m.ID == "standard" && total.GreaterThanOrEqual(decimal.NewFromInt(FreeShippingThreshold))

	cost := m.Cost
	if isFree {
		cost = decimal.Zero
	}

	return Quote{
		ID:                m.ID,
		Name:              m.Name,
		Cost:              cost.InexactFloat64(),
		OriginalCost:      m.Cost.InexactFloat64(),
		IsFree:            isFree,
		MinDays:           m.MinDays,
		MaxDays:           m.MaxDays,
		Carrier:           m.Carrier,
		EstimatedDelivery: time.Now().UTC().AddDate(0, 0, m.MaxDays),
	}
}
