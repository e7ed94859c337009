package subscription

import (
	"errors"
	"sync"
)

var ErrEmailExists = errors.New("email already subscribed")

type Repository interface {
	Create(sub Subscription) (Subscription, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.Mutex
	subs   []Subscription
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(sub Subscription) (Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.subs {
		if existing.Email == sub.Email {
			return Subscription{}, ErrEmailExists
		}
	}

	sub.ID = r.nextID
	r.nextID++
	r.subs = append(r.subs, sub)
	return sub, nil
}
