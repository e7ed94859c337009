package product

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/favourite"
	"github.com/avkdev/storefront-backend/internal/tag"
)

func makeAppWithProductHandler(h *Handler) *fiber.App {
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

func newTestProductHandler(repo *InMemoryRepository, favourites *favourite.Service) *Handler {
	if favourites == nil {
		favourites = favourite.NewService(favourite.NewInMemoryRepository())
	}
	categories := category.NewService(category.NewInMemoryRepository([]category.Category{
		{ID: 1, Name: "Chairs"},
		{ID: 2, Name: "Tables"},
	}))
	tags := tag.NewService(tag.NewInMemoryRepository(nil))
	return NewHandler(NewService(repo), favourites, categories, tags)
}

func TestSearchRoutes(t *testing.T) {
	repo := NewInMemoryRepository(seedCatalog())
	favRepo := favourite.NewInMemoryRepository()
	if _, err := favRepo.Toggle(42, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	handler := newTestProductHandler(repo, favourite.NewService(favRepo))
	app := makeAppWithProductHandler(handler)

	// search page shell
	req := httptest.NewRequest("GET", "/search/", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for search page, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "categories") {
		t.Fatalf("search page missing categories: %s", string(b))
	}

	// filtered search with favourite annotation
	req2 := httptest.NewRequest("POST", "/search/", strings.NewReader(`{"search":"chair","category":"all"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for search, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "Oak Chair") || !strings.Contains(string(b2), "Walnut Chair") {
		t.Fatalf("expected both chairs in results: %s", string(b2))
	}
	if strings.Contains(string(b2), "Oak Table") {
		t.Fatalf("table should not match a chair search: %s", string(b2))
	}
	if !strings.Contains(string(b2), `"isLiked":true`) {
		t.Fatalf("expected the favourited chair to be marked liked: %s", string(b2))
	}

	// unauthenticated search is rejected
	req3 := httptest.NewRequest("POST", "/search/", strings.NewReader(`{"search":"chair"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated search, got %d", res3.StatusCode)
	}
}

func TestGetProduct(t *testing.T) {
	repo := NewInMemoryRepository(seedCatalog())
	handler := newTestProductHandler(repo, nil)
	app := makeAppWithProductHandler(handler)

	req := httptest.NewRequest("GET", "/product/2", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for product detail, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Walnut Chair") {
		t.Fatalf("detail missing product: %s", string(b))
	}
	if !strings.Contains(string(b), `"discountPercentage":25`) {
		t.Fatalf("detail missing discount percentage: %s", string(b))
	}

	req2 := httptest.NewRequest("GET", "/product/999", nil)
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res2.StatusCode)
	}
}

func TestAddReview(t *testing.T) {
	repo := NewInMemoryRepository(seedCatalog())
	handler := newTestProductHandler(repo, nil)
	app := makeAppWithProductHandler(handler)

	req := httptest.NewRequest("POST", "/product/1/reviews", strings.NewReader(`{"text":"sturdy","rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for review, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "sturdy") {
		t.Fatalf("response missing review text: %s", string(b))
	}

	// rating out of range
	req2 := httptest.NewRequest("POST", "/product/1/reviews", strings.NewReader(`{"text":"bad","rating":6}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d", res2.StatusCode)
	}
}
