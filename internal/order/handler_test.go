package order

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithOrderHandler(service ServiceInterface) *fiber.App {
	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)
	return app
}

func TestOrderRoutes(t *testing.T) {
	service, _, _, _ := newTestService(1)
	app := makeAppWithOrderHandler(service)

	body := `{"userId":7,"items":[{"id":1,"quantity":2}],"total":5700,"shippingMethod":"overnight"}`
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for order create, got %d", res.StatusCode)
	}

	var created struct {
		Message        string `json:"message"`
		TrackingNumber string `json:"trackingNumber"`
		Order          Order  `json:"order"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !strings.HasPrefix(created.TrackingNumber, "TRK") {
		t.Fatalf("unexpected tracking number %q", created.TrackingNumber)
	}
	if created.Order.Carrier != "UPS" {
		t.Fatalf("expected UPS for overnight, got %q", created.Order.Carrier)
	}

	// missing items is a client error
	req = httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"userId":7,"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", res.StatusCode)
	}

	// unknown user maps to 404
	req = httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"userId":99,"items":[{"id":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", res.StatusCode)
	}
}

func TestOrderStatusRoute(t *testing.T) {
	service, _, _, _ := newTestService(1)
	app := makeAppWithOrderHandler(service)

	ord, _, _ := service.Create(CreateInput{UserID: 7, Items: []LineItem{{ProductID: 1}}})

	req := httptest.NewRequest("PUT", "/api/orders/1/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("PUT", "/api/orders/1/status", strings.NewReader(`{"status":"processing"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid status, got %d", res.StatusCode)
	}

	tracking := httptest.NewRequest("GET", "/api/orders/1/tracking", nil)
	res, _ = app.Test(tracking)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for tracking, got %d", res.StatusCode)
	}
	var tr Tracking
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &tr); err != nil {
		t.Fatalf("decode tracking: %v", err)
	}
	if tr.Order.ID != ord.ID || len(tr.Shipment.TrackingEvents) == 0 {
		t.Fatalf("unexpected tracking payload %+v", tr)
	}
}

func TestOrderCancelRoute(t *testing.T) {
	service, repo, _, _ := newTestService(1)
	app := makeAppWithOrderHandler(service)

	ord, _, _ := service.Create(CreateInput{UserID: 7, Items: []LineItem{{ProductID: 1}}})
	if _, err := repo.UpdateStatus(ord.ID, StatusShipped); err != nil {
		t.Fatalf("seed status: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/orders/1/cancel", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for shipped order, got %d", res.StatusCode)
	}
	raw, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(raw), "Current status: shipped") {
		t.Fatalf("conflict body should name the status, got %s", raw)
	}
}
