package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/noiratelier/storefront-backend/internal/product"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func newCartApp() *fiber.App {
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Nappa Leather Gloves", Brand: "Gucci", Price: 450},
		{ID: 2, Name: "Cashmere Overcoat", Brand: "The Row", Price: 4500},
	})
	service := NewService(NewInMemoryRepository(42), products)
	return makeAppWithCartHandler(NewHandler(service))
}

func TestCartRoutes(t *testing.T) {
	app := newCartApp()

	// unauthenticated requests are rejected
	res, _ := app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add two gloves
	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}

	var items []Item
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 || items[0].Name != "Nappa Leather Gloves" {
		t.Fatalf("unexpected cart %+v", items)
	}

	// omitted quantity defaults to one
	req = httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ = app.Test(req)
	raw, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(items))
	}

	// negative quantity decrements and removes at zero
	req = httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":1,"quantity":-2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ = app.Test(req)
	raw, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("expected only the overcoat to remain, got %+v", items)
	}

	// clear
	req = httptest.NewRequest("DELETE", "/api/cart", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for clear, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ = app.Test(req)
	raw, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}

func TestCartUnknownUser(t *testing.T) {
	app := newCartApp()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("X-User-ID", "99")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", res.StatusCode)
	}
}
