package home

import (
	"github.com/shopspring/decimal"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/order"
	"github.com/avkdev/storefront-backend/internal/post"
	"github.com/avkdev/storefront-backend/internal/product"
	"github.com/avkdev/storefront-backend/internal/tag"
)

// View is the home page view model: everything the storefront's front page
// renders in one response.
type View struct {
	Categories       []category.Category `json:"categories"`
	BestSellings     []product.Product   `json:"bestSellings"`
	FeaturedProducts []product.Product   `json:"featuredProducts"`
	ArrivedProducts  []product.Product   `json:"arrivedProducts"`
	Tags             []tag.Tag           `json:"tags"`
	LatestOrder      *LatestOrder        `json:"latestOrder,omitempty"`
	CartItems        []order.Item        `json:"cartItems"`
	CartTotal        decimal.Decimal     `json:"cartTotal"`
	Posts            []post.Post         `json:"posts"`
}

// LatestOrder is the most recent order (open or checked out) with its
// derived totals.
type LatestOrder struct {
	order.Order
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	CouponDiscount decimal.Decimal `json:"couponDiscount"`
}
