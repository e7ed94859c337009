package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/favourite"
	"github.com/avkdev/storefront-backend/internal/order"
	"github.com/avkdev/storefront-backend/internal/post"
	"github.com/avkdev/storefront-backend/internal/product"
	"github.com/avkdev/storefront-backend/internal/tag"
	"github.com/avkdev/storefront-backend/internal/user"
)

// home shows six best sellers and six newest arrivals, like the storefront
// grid.
const productShelfSize = 6

// Handler assembles the home page from the feature services. It is the one
// place that touches nearly everything, mirroring the front page itself.
type Handler struct {
	categories *category.Service
	products   *product.Service
	favourites *favourite.Service
	tags       *tag.Service
	orders     *order.Service
	posts      *post.Service
}

func NewHandler(
	categories *category.Service,
	products *product.Service,
	favourites *favourite.Service,
	tags *tag.Service,
	orders *order.Service,
	posts *post.Service,
) *Handler {
	return &Handler{
		categories: categories,
		products:   products,
		favourites: favourites,
		tags:       tags,
		orders:     orders,
		posts:      posts,
	}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/", h.index)
}

func (h *Handler) index(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	favIDs, err := h.favourites.ProductIDs(userID)
	if err != nil {
		favIDs = nil
	}

	posts := h.posts.List()
	for i := range posts {
		posts[i].Tags = h.tags.NamesForPost(posts[i].ID)
	}

	view := View{
		Categories:       h.categories.List(),
		BestSellings:     product.Annotate(h.products.BestSelling(productShelfSize), favIDs),
		FeaturedProducts: product.Annotate(h.products.Featured(), favIDs),
		ArrivedProducts:  product.Annotate(h.products.NewestArrivals(productShelfSize), favIDs),
		Tags:             h.tags.List(),
		Posts:            posts,
	}

	if items, err := h.orders.Cart(userID); err == nil {
		view.CartItems = items
		view.CartTotal = (order.Order{Items: items}).TotalPrice()
	}

	if latest, err := h.orders.Latest(userID); err == nil {
		view.LatestOrder = &LatestOrder{
			Order:          latest,
			TotalPrice:     latest.TotalPrice(),
			CouponDiscount: latest.CouponDiscount(),
		}
	}

	return c.JSON(view)
}
