package wishlist

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/noiratelier/storefront-backend/internal/product"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/wishlist/:userId<[0-9]+>", h.listByUser)
	app.Post("/api/wishlist", h.add)
	app.Post("/api/wishlist/remove", h.removeByPair)
	app.Delete("/api/wishlist/:id<[0-9]+>", h.removeByID)
}

func (h *Handler) listByUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	entries, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(entries)
}

type wishlistRequest struct {
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
}

func (h *Handler) add(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UserID <= 0 || payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId and productId are required"})
	}

	entry, err := h.service.Add(payload.UserID, payload.ProductID)
	if err != nil {
		switch err {
		case ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Product already in wishlist"})
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product added to wishlist", "item": entry})
}

func (h *Handler) removeByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid wishlist id"})
	}

	if err := h.service.RemoveByID(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Wishlist item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product removed from wishlist"})
}

func (h *Handler) removeByPair(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UserID <= 0 || payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId and productId are required"})
	}

	if err := h.service.Remove(payload.UserID, payload.ProductID); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Wishlist item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Product removed from wishlist"})
}
