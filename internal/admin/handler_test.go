package admin

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/noiratelier/storefront-backend/internal/wishlist"
)

func makeAppWithAdminHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Role"); role != "" {
			claims := jwt.MapClaims{"user_id": 1, "role": role}
			tok := &jwt.Token{Claims: claims}
			c.Locals("user", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func newAdminApp() *fiber.App {
	service := NewService(&fakeRepo{}, seedUsers(), &fakeOrders{}, wishlist.NewInMemoryRepository(nil))
	return makeAppWithAdminHandler(NewHandler(service))
}

func TestAdminRoleGate(t *testing.T) {
	app := newAdminApp()

	// no token
	res, _ := app.Test(httptest.NewRequest("GET", "/api/admin/users-summary", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	// customer token
	req := httptest.NewRequest("GET", "/api/admin/users-summary", nil)
	req.Header.Set("X-Role", "customer")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", res.StatusCode)
	}

	// admin token
	req = httptest.NewRequest("GET", "/api/admin/users-summary", nil)
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", res.StatusCode)
	}
}

func TestAdminUserManagement(t *testing.T) {
	app := newAdminApp()

	// create a user
	req := httptest.NewRequest("POST", "/api/admin/users", strings.NewReader(`{"name":"New","email":"new@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "admin")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for create, got %d", res.StatusCode)
	}

	// duplicate email conflicts
	req = httptest.NewRequest("POST", "/api/admin/users", strings.NewReader(`{"name":"New","email":"new@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res.StatusCode)
	}

	// admins cannot be deleted
	req = httptest.NewRequest("DELETE", "/api/admin/users/1", nil)
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for admin delete, got %d", res.StatusCode)
	}
	raw, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(raw), "Cannot delete admin users") {
		t.Fatalf("unexpected body %s", raw)
	}

	// customers can
	req = httptest.NewRequest("DELETE", "/api/admin/users/3", nil)
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for customer delete, got %d", res.StatusCode)
	}

	// role update with a bad value
	req = httptest.NewRequest("PUT", "/api/admin/users/2/role", strings.NewReader(`{"role":"emperor"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad role, got %d", res.StatusCode)
	}

	// status update
	req = httptest.NewRequest("PUT", "/api/admin/users/2/status", strings.NewReader(`{"status":"suspended"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "admin")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for status update, got %d", res.StatusCode)
	}
}
