package order

import (
	"errors"

	"github.com/google/uuid"

	"github.com/avkdev/storefront-backend/internal/product"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// ProductGetter validates that a product exists before it enters a cart.
type ProductGetter interface {
	GetByID(id int) (product.Product, error)
}

type Service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) *Service {
	return &Service{repo: repo, products: products}
}

// AddToCart accumulates quantity for a product on the user's open order,
// creating the order and the item as needed. Adding N then M of the same
// product leaves a single item with quantity N+M.
func (s *Service) AddToCart(userID, productID, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return Item{}, err
	}

	o, err := s.repo.OpenOrder(userID)
	if err != nil {
		return Item{}, err
	}

	item, err := s.repo.UpsertItem(o.ID, productID, quantity)
	if err != nil {
		return Item{}, err
	}
	item.Product = p
	return item, nil
}

// Cart returns the user's open order items with derived totals.
func (s *Service) Cart(userID int) ([]Item, error) {
	return s.repo.OpenOrderItems(userID)
}

func (s *Service) Latest(userID int) (Order, error) {
	return s.repo.LatestOrder(userID)
}

// Checkout snapshots billing onto the user's open order, which closes it.
// The payment reference is generated server-side; the status starts pending.
func (s *Service) Checkout(userID int, billing Billing) (Billing, error) {
	items, err := s.repo.OpenOrderItems(userID)
	if err != nil {
		return Billing{}, err
	}
	if len(items) == 0 {
		return Billing{}, ErrNoOpenOrder
	}

	o, err := s.repo.OpenOrder(userID)
	if err != nil {
		return Billing{}, err
	}

	billing.PaymentStatus = PaymentStatusPending
	billing.PaymentReference = uuid.NewString()
	return s.repo.AttachBilling(o.ID, billing)
}

// ApplyPromo attaches a promo code to the user's open order and returns the
// discount it grants on the current total.
func (s *Service) ApplyPromo(userID int, code string) (Order, error) {
	promo, err := s.repo.PromocodeByCode(code)
	if err != nil {
		return Order{}, err
	}

	o, err := s.repo.OpenOrder(userID)
	if err != nil {
		return Order{}, err
	}

	if err := s.repo.AttachPromocode(o.ID, promo.ID); err != nil {
		return Order{}, err
	}

	items, err := s.repo.OpenOrderItems(userID)
	if err != nil {
		return Order{}, err
	}

	pid := promo.ID
	o.PromocodeID = &pid
	o.Promocode = &promo
	o.Items = items
	return o, nil
}
