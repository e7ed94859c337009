package post

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avkdev/storefront-backend/internal/user"
)

// TagNamer resolves the tag names attached to a post.
type TagNamer interface {
	NamesForPost(postID int) []string
}

type Handler struct {
	service *Service
	tags    TagNamer
}

func NewHandler(s *Service, tags TagNamer) *Handler {
	return &Handler{service: s, tags: tags}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/posts/", h.listPosts)
	app.Get("/posts/:id<[0-9]+>/comments", h.listComments)
	app.Post("/posts/:id<[0-9]+>/comments", h.addComment)
}

func (h *Handler) listPosts(c *fiber.Ctx) error {
	posts := h.service.List()
	for i := range posts {
		posts[i].Tags = h.tags.NamesForPost(posts[i].ID)
	}
	return c.JSON(posts)
}

func (h *Handler) listComments(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if _, err := h.service.GetByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "post not found"})
	}

	return c.JSON(h.service.Comments(id))
}

type commentRequest struct {
	Text string `json:"text" form:"text"`
}

func (h *Handler) addComment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(commentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "text is required"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.AddComment(Comment{
		PostID:    id,
		UserID:    userID,
		Text:      payload.Text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
