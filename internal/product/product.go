package product

import "github.com/shopspring/decimal"

// Product maps to the `products` table. Prices are carried as decimals;
// DiscountedPrice is nil when the product is not on sale.
type Product struct {
	ID                    int              `json:"productId"`
	Name                  string           `json:"name"`
	SKU                   string           `json:"sku"`
	CategoryID            *int             `json:"categoryId,omitempty"`
	CategoryName          *string          `json:"categoryName,omitempty"`
	Description           string           `json:"description"`
	AdditionalInformation *string          `json:"additionalInformation,omitempty"`
	OriginalPrice         decimal.Decimal  `json:"originalPrice"`
	DiscountedPrice       *decimal.Decimal `json:"discountedPrice,omitempty"`
	IsFeatured            bool             `json:"isFeatured"`
	FeaturedImage         string           `json:"featuredImage"`

	// IsLiked is filled in per requesting user, never persisted.
	IsLiked bool `json:"isLiked"`
}

// EffectivePrice is the price a cart line pays: the discounted price when
// present, the original price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.OriginalPrice
}

// DiscountPercentage returns the rounded-up discount in percent. The second
// return is false when the product has no discounted price or the original
// price is zero.
func (p Product) DiscountPercentage() (int, bool) {
	if p.DiscountedPrice == nil || p.OriginalPrice.IsZero() {
		return 0, false
	}
	pct := p.OriginalPrice.Sub(*p.DiscountedPrice).
		Mul(decimal.NewFromInt(100)).
		Div(p.OriginalPrice)
	return int(pct.Ceil().IntPart()), true
}

// Image is a gallery image attached to a product.
type Image struct {
	ID        int    `json:"imageId"`
	ProductID int    `json:"productId"`
	Image     string `json:"image"`
}

// Review is a customer review left on a product.
type Review struct {
	ID        int    `json:"reviewId"`
	ProductID int    `json:"productId"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Detail is the product page view model.
type Detail struct {
	Product
	Images             []Image  `json:"images"`
	Tags               []string `json:"tags"`
	Reviews            []Review `json:"reviews"`
	ReviewCount        int      `json:"reviewCount"`
	AverageRating      int      `json:"averageRating"`
	DiscountPercentage *int     `json:"discountPercentage,omitempty"`
}
