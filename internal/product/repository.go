package product

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
	Featured() []Product
	BestSelling(limit int) []Product
	NewestArrivals(limit int) []Product
	SearchByName(search string) []Product
	ListByCategoryName(categoryName string) []Product
	SearchByNameAndCategory(search, categoryName string) []Product
	ImagesByProduct(productID int) []Image
	ReviewsByProduct(productID int) []Review
	AddReview(review Review) (Review, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu           sync.RWMutex
	storage      []Product
	images       []Image
	reviews      []Review
	nextReviewID int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:      make([]Product, 0, len(seed)),
		nextReviewID: 1,
	}
	r.storage = append(r.storage, seed...)
	return r
}

// SeedImages replaces the image fixtures (tests only).
func (r *InMemoryRepository) SeedImages(images []Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = images
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Featured() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) BestSelling(limit int) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, limit)
	for _, p := range r.storage {
		if p.IsFeatured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (r *InMemoryRepository) NewestArrivals(limit int) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *InMemoryRepository) SearchByName(search string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	out := make([]Product, 0)
	for _, p := range r.storage {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) ListByCategoryName(categoryName string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.CategoryName != nil && *p.CategoryName == categoryName {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) SearchByNameAndCategory(search, categoryName string) []Product {
	needle := strings.ToLower(search)
	out := make([]Product, 0)
	for _, p := range r.ListByCategoryName(categoryName) {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) ImagesByProduct(productID int) []Image {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Image, 0)
	for _, img := range r.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out
}

func (r *InMemoryRepository) ReviewsByProduct(productID int) []Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, 0)
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out
}

func (r *InMemoryRepository) AddReview(review Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.storage {
		if p.ID == review.ProductID {
			found = true
			break
		}
	}
	if !found {
		return Review{}, ErrNotFound
	}

	review.ID = r.nextReviewID
	r.nextReviewID++
	r.reviews = append(r.reviews, review)
	return review, nil
}
