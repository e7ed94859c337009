package order

import (
	"errors"
	"sync"

	"github.com/avkdev/storefront-backend/internal/product"
)

var (
	ErrNoOrder           = errors.New("no order for user")
	ErrNoOpenOrder       = errors.New("no open order for user")
	ErrUnknownPromo      = errors.New("unknown promo code")
	ErrAlreadyCheckedOut = errors.New("order already checked out")
)

// Repository persists the order aggregate. OpenOrder and UpsertItem carry the
// cart-accumulation contract: at most one open order per user and at most one
// item per (open order, product), enforced by constraints rather than by
// read-then-write sequences.
type Repository interface {
	OpenOrder(userID int) (Order, error)
	UpsertItem(orderID, productID, quantity int) (Item, error)
	OpenOrderItems(userID int) ([]Item, error)
	LatestOrder(userID int) (Order, error)
	AttachBilling(orderID int, billing Billing) (Billing, error)
	PromocodeByCode(code string) (Promocode, error)
	AttachPromocode(orderID, promocodeID int) error
}

// InMemoryRepository is used for tests and local scenarios. It resolves
// product details from a seeded catalog the way the Postgres implementation
// joins the products table.
type InMemoryRepository struct {
	mu          sync.Mutex
	orders      []Order
	billings    []Billing
	promocodes  []Promocode
	products    map[int]product.Product
	nextOrder   int
	nextItem    int
	nextBilling int
}

func NewInMemoryRepository(catalog []product.Product, promocodes []Promocode) *InMemoryRepository {
	r := &InMemoryRepository{
		products:    make(map[int]product.Product, len(catalog)),
		promocodes:  promocodes,
		nextOrder:   1,
		nextItem:    1,
		nextBilling: 1,
	}
	for _, p := range catalog {
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) OpenOrder(userID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.openOrderLocked(userID), nil
}

func (r *InMemoryRepository) openOrderLocked(userID int) Order {
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID && o.BillingID == nil {
			return o
		}
	}

	uid := userID
	o := Order{ID: r.nextOrder, UserID: &uid}
	r.nextOrder++
	r.orders = append(r.orders, o)
	return o
}

func (r *InMemoryRepository) UpsertItem(orderID, productID, quantity int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for oi, o := range r.orders {
		if o.ID != orderID {
			continue
		}
		for ii, item := range o.Items {
			if item.ProductID == productID {
				item.Quantity += quantity
				r.orders[oi].Items[ii] = item
				return item, nil
			}
		}
		item := Item{
			ID:        r.nextItem,
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
			Product:   r.products[productID],
		}
		r.nextItem++
		r.orders[oi].Items = append(r.orders[oi].Items, item)
		return item, nil
	}

	return Item{}, ErrNoOrder
}

func (r *InMemoryRepository) OpenOrderItems(userID int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID && o.BillingID == nil {
			out := make([]Item, len(o.Items))
			copy(out, o.Items)
			return out, nil
		}
	}
	return []Item{}, nil
}

func (r *InMemoryRepository) LatestOrder(userID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := -1
	for i, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			latest = i
		}
	}
	if latest < 0 {
		return Order{}, ErrNoOrder
	}
	return r.orders[latest], nil
}

func (r *InMemoryRepository) AttachBilling(orderID int, billing Billing) (Billing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID != orderID {
			continue
		}
		if o.BillingID != nil {
			return Billing{}, ErrAlreadyCheckedOut
		}
		billing.ID = r.nextBilling
		r.nextBilling++
		r.billings = append(r.billings, billing)
		bid := billing.ID
		r.orders[i].BillingID = &bid
		return billing, nil
	}

	return Billing{}, ErrNoOrder
}

func (r *InMemoryRepository) PromocodeByCode(code string) (Promocode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, promo := range r.promocodes {
		if promo.Code == code {
			return promo, nil
		}
	}
	return Promocode{}, ErrUnknownPromo
}

func (r *InMemoryRepository) AttachPromocode(orderID, promocodeID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == orderID {
			pid := promocodeID
			r.orders[i].PromocodeID = &pid
			for _, promo := range r.promocodes {
				if promo.ID == promocodeID {
					p := promo
					r.orders[i].Promocode = &p
				}
			}
			return nil
		}
	}
	return ErrNoOrder
}
