package address

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithAddressHandler(h *Handler) *fiber.App {
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

func TestAddressCRUD(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	app := makeAppWithAddressHandler(NewHandler(service))

	// unauthenticated create is rejected
	req := httptest.NewRequest("POST", "/api/addresses", strings.NewReader(`{"line1":"1 Rue Saint-Honore"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// create
	req = httptest.NewRequest("POST", "/api/addresses", strings.NewReader(`{"line1":"1 Rue Saint-Honore","city":"Paris","country":"France"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Address
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.UserID != 7 || created.Country != "France" {
		t.Fatalf("unexpected address %+v", created)
	}

	// missing line1 is a client error
	req = httptest.NewRequest("POST", "/api/addresses", strings.NewReader(`{"city":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing line1, got %d", res.StatusCode)
	}

	// another user cannot touch the row
	req = httptest.NewRequest("PUT", "/api/addresses/"+strconv.Itoa(created.ID), strings.NewReader(`{"line1":"hijacked"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "8")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for other user, got %d", res.StatusCode)
	}

	// owner update
	req = httptest.NewRequest("PUT", "/api/addresses/"+strconv.Itoa(created.ID), strings.NewReader(`{"line1":"2 Rue de Rivoli"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res.StatusCode)
	}
	var updated Address
	raw, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Line1 != "2 Rue de Rivoli" || updated.Country != "France" {
		t.Fatalf("unexpected updated address %+v", updated)
	}

	// list shows the single row
	req = httptest.NewRequest("GET", "/api/addresses", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	var addrs []Address
	raw, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &addrs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(addrs) != 1 {
		t.Fatalf("expected 1 address, got %d", len(addrs))
	}

	// delete, then deleting again is a 404
	req = httptest.NewRequest("DELETE", "/api/addresses/"+strconv.Itoa(created.ID), nil)
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res.StatusCode)
	}
	req = httptest.NewRequest("DELETE", "/api/addresses/"+strconv.Itoa(created.ID), nil)
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", res.StatusCode)
	}
}
