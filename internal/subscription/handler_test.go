package subscription

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithSubscriptionHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app
}

func TestSubscribe(t *testing.T) {
	app := makeAppWithSubscriptionHandler(NewHandler(NewService(NewInMemoryRepository())))

	req := httptest.NewRequest("POST", "/subscription/", strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for subscribe, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "alice@example.com") {
		t.Fatalf("response missing subscription: %s", string(b))
	}

	// same email again conflicts
	req2 := httptest.NewRequest("POST", "/subscription/", strings.NewReader(`{"email":"alice@example.com"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res2.StatusCode)
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	app := makeAppWithSubscriptionHandler(NewHandler(NewService(NewInMemoryRepository())))

	for _, email := range []string{"", "   ", "not-an-email"} {
		req := httptest.NewRequest("POST", "/subscription/", strings.NewReader(`{"email":"`+email+`"}`))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for email %q, got %d", email, res.StatusCode)
		}
	}
}

func TestSubscribe_TrimsWhitespace(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	created, err := service.Subscribe(" Bob ", " bob@example.com ")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if created.Email != "bob@example.com" || created.Name != "Bob" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
}
