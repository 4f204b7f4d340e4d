package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/noiratelier/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterProtectedRoutes must be called after the JWT middleware; every
// route additionally requires the admin role.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", requireAdmin)

	admin.Get("/users-summary", h.usersSummary)
	admin.Get("/user/:id<[0-9]+>", h.userDetail)

	admin.Get("/analytics/users-growth", h.usersGrowth)
	admin.Get("/analytics/top-customers", h.topCustomers)
	admin.Get("/analytics/category-stats", h.categoryStats)

	admin.Get("/users", h.listUsers)
	admin.Post("/users", h.createUser)
	admin.Put("/users/:id<[0-9]+>/role", h.updateRole)
	admin.Put("/users/:id<[0-9]+>/status", h.updateStatus)
	admin.Delete("/users/:id<[0-9]+>", h.deleteUser)
}

func requireAdmin(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if role != user.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}
	return c.Next()
}

func (h *Handler) usersSummary(c *fiber.Ctx) error {
	summary, err := h.service.UsersSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) userDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	detail, err := h.service.UserDetail(id)
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(detail)
}

func (h *Handler) usersGrowth(c *fiber.Ctx) error {
	growth, err := h.service.UsersGrowth()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(growth)
}

func (h *Handler) topCustomers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	top, err := h.service.TopCustomers(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(top)
}

func (h *Handler) categoryStats(c *fiber.Ctx) error {
	stats, err := h.service.CategoryStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(stats)
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(users)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, email and password are required"})
	}

	role := payload.Role
	if role == "" {
		role = user.RoleCustomer
	}

	created, err := h.service.CreateUser(user.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     role,
	})
	if err != nil {
		if err == user.ErrEmailExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) updateRole(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	payload := new(roleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Role != user.RoleAdmin && payload.Role != user.RoleCustomer {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid role"})
	}

	updated, err := h.service.UpdateUserRole(id, payload.Role)
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(user.Sanitize(updated))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	switch payload.Status {
	case user.StatusActive, user.StatusInactive, user.StatusSuspended:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}

	updated, err := h.service.UpdateUserStatus(id, payload.Status)
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(user.Sanitize(updated))
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	if err := h.service.DeleteUser(id); err != nil {
		switch err {
		case user.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		case user.ErrAdminProtected:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Cannot delete admin users"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
