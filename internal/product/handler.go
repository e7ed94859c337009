package product

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/user"
)

// FavouriteIDs reports the product ids the given user has favourited, used
// to annotate search results.
type FavouriteIDs interface {
	ProductIDs(userID int) ([]int, error)
}

// CategoryLister supplies the category list for the search page shell.
type CategoryLister interface {
	List() []category.Category
}

// TagNamer resolves the tag names attached to a product.
type TagNamer interface {
	NamesForProduct(productID int) []string
}

type Handler struct {
	service    *Service
	favourites FavouriteIDs
	categories CategoryLister
	tags       TagNamer
}

func NewHandler(service *Service, favourites FavouriteIDs, categories CategoryLister, tags TagNamer) *Handler {
	return &Handler{service: service, favourites: favourites, categories: categories, tags: tags}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/search/", h.searchPage)
	app.Post("/search/", h.search)
	app.Get("/product/:id<[0-9]+>", h.getProduct)
	app.Post("/product/:id<[0-9]+>/reviews", h.addReview)
}

type searchRequest struct {
	Search   string `json:"search" form:"search"`
	Category string `json:"category" form:"category"`
}

func (h *Handler) searchPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"bestSellings": h.service.List(),
		"categories":   h.categories.List(),
	})
}

func (h *Handler) search(c *fiber.Ctx) error {
	payload := new(searchRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	products := h.service.Search(payload.Search, payload.Category)
	if favIDs, err := h.favourites.ProductIDs(userID); err == nil {
		products = Annotate(products, favIDs)
	}

	return c.JSON(fiber.Map{
		"bestSellings": products,
		"categories":   h.categories.List(),
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	detail, err := h.service.Describe(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	detail.Tags = h.tags.NamesForProduct(id)
	return c.JSON(detail)
}

type reviewRequest struct {
	Text   string `json:"text" form:"text"`
	Rating int    `json:"rating" form:"rating"`
}

func (h *Handler) addReview(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(reviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Text == "" || payload.Rating < 1 || payload.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "text and a 1-5 rating are required"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.AddReview(Review{
		ProductID: id,
		UserID:    userID,
		Text:      payload.Text,
		Rating:    payload.Rating,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
