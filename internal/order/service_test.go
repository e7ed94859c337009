package order

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/avkdev/storefront-backend/internal/product"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testCatalog() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Oak Chair", OriginalPrice: dec("100")},
		{ID: 2, Name: "Walnut Chair", OriginalPrice: dec("120"), DiscountedPrice: decPtr("90")},
	}
}

func newTestService(promos []Promocode) (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository(testCatalog(), promos)
	products := product.NewService(product.NewInMemoryRepository(testCatalog()))
	return NewService(repo, products), repo
}

func TestAddToCart_Accumulates(t *testing.T) {
	service, _ := newTestService(nil)

	if _, err := service.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	item, err := service.AddToCart(42, 1, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected accumulated quantity 5, got %d", item.Quantity)
	}

	items, err := service.Cart(42)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single line for repeated adds, got %d", len(items))
	}
}

func TestAddToCart_Validation(t *testing.T) {
	service, _ := newTestService(nil)

	if _, err := service.AddToCart(42, 1, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for zero, got %v", err)
	}
	if _, err := service.AddToCart(42, 1, -1); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for negative, got %v", err)
	}
	if _, err := service.AddToCart(42, 99, 1); err != product.ErrNotFound {
		t.Fatalf("expected product.ErrNotFound for unknown product, got %v", err)
	}
}

func TestTotalPrice(t *testing.T) {
	service, _ := newTestService(nil)

	// 2 × 100 plus 1 × 90 (discounted price wins over original)
	if _, err := service.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := service.AddToCart(42, 2, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := service.Cart(42)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	total := (Order{Items: items}).TotalPrice()
	if !total.Equal(dec("290")) {
		t.Fatalf("expected total 290, got %s", total)
	}
}

func TestTotalPrice_Empty(t *testing.T) {
	total := (Order{}).TotalPrice()
	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total for empty order, got %s", total)
	}
}

func TestCouponDiscount(t *testing.T) {
	o := Order{
		Items: []Item{
			{Quantity: 2, Product: product.Product{OriginalPrice: dec("100")}},
		},
		Promocode: &Promocode{DiscountPercent: 10},
	}
	if !o.CouponDiscount().Equal(dec("20")) {
		t.Fatalf("expected discount 20, got %s", o.CouponDiscount())
	}

	o.Promocode = nil
	if !o.CouponDiscount().Equal(decimal.Zero) {
		t.Fatalf("expected zero discount without a promocode, got %s", o.CouponDiscount())
	}
}

func TestCheckout(t *testing.T) {
	service, repo := newTestService(nil)

	if _, err := service.AddToCart(42, 1, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	billing, err := service.Checkout(42, Billing{
		FirstName:   "Alice",
		LastName:    "Smith",
		Address:     "1 Main St",
		PaymentType: PaymentTypeCreditCard,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if billing.PaymentStatus != PaymentStatusPending {
		t.Fatalf("expected pending status, got %q", billing.PaymentStatus)
	}
	if billing.PaymentReference == "" {
		t.Fatalf("expected a generated payment reference")
	}

	// the open order is now closed; a fresh cart is empty
	items, err := service.Cart(42)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(items))
	}

	// the closed order survives as the latest order
	latest, err := repo.LatestOrder(42)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.BillingID == nil {
		t.Fatalf("expected latest order to carry its billing")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Checkout(42, Billing{FirstName: "A", LastName: "B", Address: "C"})
	if err != ErrNoOpenOrder {
		t.Fatalf("expected ErrNoOpenOrder for empty cart, got %v", err)
	}
}

func TestApplyPromo(t *testing.T) {
	service, _ := newTestService([]Promocode{{ID: 1, Code: "SAVE10", DiscountPercent: 10}})

	if _, err := service.AddToCart(42, 1, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	o, err := service.ApplyPromo(42, "SAVE10")
	if err != nil {
		t.Fatalf("apply promo: %v", err)
	}
	if o.Promocode == nil || o.Promocode.Code != "SAVE10" {
		t.Fatalf("expected promocode on order, got %+v", o.Promocode)
	}
	if !o.CouponDiscount().Equal(dec("10")) {
		t.Fatalf("expected discount 10 on a 100 total, got %s", o.CouponDiscount())
	}
}

func TestApplyPromo_Unknown(t *testing.T) {
	service, _ := newTestService(nil)

	if _, err := service.ApplyPromo(42, "NOPE"); err != ErrUnknownPromo {
		t.Fatalf("expected ErrUnknownPromo, got %v", err)
	}
}
