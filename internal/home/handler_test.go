package home

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/favourite"
	"github.com/avkdev/storefront-backend/internal/order"
	"github.com/avkdev/storefront-backend/internal/post"
	"github.com/avkdev/storefront-backend/internal/product"
	"github.com/avkdev/storefront-backend/internal/tag"
)

func makeAppWithHomeHandler(h *Handler) *fiber.App {
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

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func homeCatalog() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Oak Chair", OriginalPrice: dec("100")},
		{ID: 2, Name: "Walnut Chair", OriginalPrice: dec("120")},
		{ID: 3, Name: "Velvet Sofa", OriginalPrice: dec("900"), IsFeatured: true},
	}
}

func newTestHomeHandler(t *testing.T) (*Handler, *order.Service, *favourite.Service) {
	t.Helper()

	catalog := homeCatalog()
	categories := category.NewService(category.NewInMemoryRepository([]category.Category{{ID: 1, Name: "Chairs"}}))
	products := product.NewService(product.NewInMemoryRepository(catalog))
	favourites := favourite.NewService(favourite.NewInMemoryRepository())
	tags := tag.NewService(tag.NewInMemoryRepository([]tag.Tag{{ID: 1, Name: "wood"}}))
	orders := order.NewService(order.NewInMemoryRepository(catalog, nil), products)
	posts := post.NewService(post.NewInMemoryRepository([]post.Post{{ID: 1, Title: "Care for oak furniture"}}))

	return NewHandler(categories, products, favourites, tags, orders, posts), orders, favourites
}

func TestIndex(t *testing.T) {
	handler, orders, favourites := newTestHomeHandler(t)
	app := makeAppWithHomeHandler(handler)

	if _, err := orders.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := favourites.Toggle(42, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for home page, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)

	for _, want := range []string{
		`"categories"`, `"bestSellings"`, `"featuredProducts"`,
		`"arrivedProducts"`, `"tags"`, `"posts"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("home payload missing %s: %s", want, body)
		}
	}
	if !strings.Contains(body, "Velvet Sofa") {
		t.Fatalf("expected the featured sofa, got %s", body)
	}
	if !strings.Contains(body, `"cartTotal":"200"`) {
		t.Fatalf("expected cart total 200, got %s", body)
	}
	if !strings.Contains(body, `"isLiked":true`) {
		t.Fatalf("expected the favourited product marked liked, got %s", body)
	}
	if !strings.Contains(body, `"latestOrder"`) {
		t.Fatalf("expected the open order as latest order, got %s", body)
	}
}

func TestIndex_NoOrders(t *testing.T) {
	handler, _, _ := newTestHomeHandler(t)
	app := makeAppWithHomeHandler(handler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for home page, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), `"latestOrder"`) {
		t.Fatalf("expected no latest order for a fresh user, got %s", string(b))
	}
}

func TestIndex_Unauthorized(t *testing.T) {
	handler, _, _ := newTestHomeHandler(t)
	app := makeAppWithHomeHandler(handler)

	req := httptest.NewRequest("GET", "/", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", res.StatusCode)
	}
}
