package favourite

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/avkdev/storefront-backend/internal/user"
)

// Handler delegates favourite operations to the favourite service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	// the storefront submits the toggle as a plain link (GET) or a form (POST)
	app.Get("/favourite/", h.toggle)
	app.Post("/favourite/", h.toggle)
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	liked, err := h.service.Toggle(userID, productID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"productId": productID, "liked": liked})
}
