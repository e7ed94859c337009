package order

import (
	"github.com/shopspring/decimal"

	"github.com/avkdev/storefront-backend/internal/product"
)

// Order is the cart/order aggregate. An order with no billing attached is
// the user's open cart; attaching billing is the checkout transition.
type Order struct {
	ID          int        `json:"orderId"`
	UserID      *int       `json:"userId,omitempty"`
	BillingID   *int       `json:"billingId,omitempty"`
	PromocodeID *int       `json:"promocodeId,omitempty"`
	Items       []Item     `json:"items"`
	Promocode   *Promocode `json:"promocode,omitempty"`
}

// Item is one (order, product) line with a quantity counter. Product is
// loaded alongside so prices can be derived without extra lookups.
type Item struct {
	ID        int             `json:"itemId"`
	OrderID   int             `json:"orderId"`
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   product.Product `json:"product"`
}

// LinePrice is (discounted price if set else original price) × quantity.
func (i Item) LinePrice() decimal.Decimal {
	return i.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalPrice is derived, never stored: the sum of line prices. An order with
// no items totals zero.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LinePrice())
	}
	return total
}

// CouponDiscount is the flat percentage the attached promocode takes off the
// total. Zero when no promocode is attached.
func (o Order) CouponDiscount() decimal.Decimal {
	if o.Promocode == nil {
		return decimal.Zero
	}
	return o.TotalPrice().
		Mul(decimal.NewFromInt(int64(o.Promocode.DiscountPercent))).
		Div(decimal.NewFromInt(100))
}

// Billing is the shipping/payment snapshot taken at checkout.
type Billing struct {
	ID               int    `json:"billingId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Address          string `json:"address"`
	Address2         string `json:"address2,omitempty"`
	CountryID        *int   `json:"countryId,omitempty"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	IsShippingSame   bool   `json:"isShippingAddressSame"`
	PaymentType      string `json:"paymentType"`
	PaymentStatus    string `json:"paymentStatus"`
	SaveAsDefault    bool   `json:"saveAsDefault"`
	PaymentReference string `json:"paymentReference"`
}

// Payment types and statuses carried on the billing snapshot. Free-text in
// storage; these are the values the storefront submits.
const (
	PaymentTypeCreditCard = "credit_card"
	PaymentTypeDebitCard  = "debit_card"
	PaymentTypePaypal     = "paypal"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusRejected  = "rejected"
)

// Promocode is a flat percentage discount applied to the order total.
type Promocode struct {
	ID              int    `json:"promocodeId"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
}

// Country is a billing country option.
type Country struct {
	ID   int    `json:"countryId"`
	Name string `json:"name"`
}
