package shipping

import (
	"strings"
	"testing"
	"time"
)

type memRepository struct {
	byOrder map[int]Shipment
}

func (m *memRepository) GetByOrderID(orderID int) (Shipment, error) {
	sh, ok := m.byOrder[orderID]
	if !ok {
		return Shipment{}, ErrNotFound
	}
	return sh, nil
}

func (m *memRepository) GetByTrackingNumber(trackingNumber string) (Shipment, error) {
	for _, sh := range m.byOrder {
		if sh.TrackingNumber == trackingNumber {
			return sh, nil
		}
	}
	return Shipment{}, ErrNotFound
}

func (m *memRepository) Save(sh Shipment) (Shipment, error) {
	if _, ok := m.byOrder[sh.OrderID]; !ok {
		return Shipment{}, ErrNotFound
	}
	m.byOrder[sh.OrderID] = sh
	return sh, nil
}

func TestGenerateTrackingNumberFormat(t *testing.T) {
	tn := GenerateTrackingNumber()
	if !strings.HasPrefix(tn, "TRK") {
		t.Fatalf("expected TRK prefix, got %q", tn)
	}
	if tn != strings.ToUpper(tn) {
		t.Fatalf("expected uppercase tracking number, got %q", tn)
	}
	if len(tn) < len("TRK")+6 {
		t.Fatalf("tracking number too short: %q", tn)
	}
}

func TestGenerateTrackingNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		tn := GenerateTrackingNumber()
		if seen[tn] {
			t.Fatalf("duplicate tracking number %q after %d generations", tn, i)
		}
		seen[tn] = true
	}
}

func TestCalculateFreeShippingThreshold(t *testing.T) {
	service := NewService(&memRepository{byOrder: map[int]Shipment{}})

	quote, err := service.Calculate("standard", 150)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !quote.IsFree || quote.Cost != 0 {
		t.Fatalf("expected free standard shipping at 150, got %+v", quote)
	}
	if quote.OriginalCost != 5.99 {
		t.Fatalf("expected original cost 5.99, got %v", quote.OriginalCost)
	}

	quote, err = service.Calculate("standard", 50)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if quote.IsFree || quote.Cost != 5.99 {
		t.Fatalf("expected 5.99 standard shipping at 50, got %+v", quote)
	}

	// threshold never applies to express
	quote, err = service.Calculate("express", 500)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if quote.IsFree || quote.Cost != 12.99 {
		t.Fatalf("expected paid express at 500, got %+v", quote)
	}

	if _, err := service.Calculate("teleport", 10); err != ErrInvalidMethod {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestResolveCarrier(t *testing.T) {
	cases := []struct {
		method  string
		carrier string
		days    int
	}{
		{"standard", "USPS", 7},
		{"express", "FedEx", 3},
		{"overnight", "UPS", 1},
		{"pigeon", DefaultCarrier, DefaultDeliveryDays},
	}
	for _, tc := range cases {
		carrier, days := ResolveCarrier(tc.method)
		if carrier != tc.carrier || days != tc.days {
			t.Fatalf("%s: got (%s, %d), want (%s, %d)", tc.method, carrier, days, tc.carrier, tc.days)
		}
	}
}

func TestUpdateStatusAppendsEvent(t *testing.T) {
	repo := &memRepository{byOrder: map[int]Shipment{
		3: {OrderID: 3, Status: StatusPending, TrackingEvents: []TrackingEvent{{Status: StatusPending, Timestamp: time.Now()}}},
	}}
	service := NewService(repo)

	loc := "Memphis, TN"
	sh, err := service.UpdateStatus(3, StatusInTransit, &loc)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if sh.Status != StatusInTransit {
		t.Fatalf("expected in_transit, got %q", sh.Status)
	}
	if len(sh.TrackingEvents) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sh.TrackingEvents))
	}
	last := sh.TrackingEvents[1]
	if last.Location != loc || last.Description != "Package is on the way" {
		t.Fatalf("unexpected event %+v", last)
	}
	if sh.CurrentLocation == nil || *sh.CurrentLocation != loc {
		t.Fatal("expected current location to be set")
	}

	sh, err = service.UpdateStatus(3, StatusDelivered, nil)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if sh.ActualDelivery == nil {
		t.Fatal("expected actual delivery timestamp")
	}
}
