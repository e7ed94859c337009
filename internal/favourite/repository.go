package favourite

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository persists favourite toggles. Toggle reports the resulting state:
// true when the pair is now favourited, false when it was removed.
type Repository interface {
	Toggle(userID, productID int) (bool, error)
	ProductIDs(userID int) ([]int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.Mutex
	pairs map[int][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{pairs: make(map[int][]int)}
}

func (r *InMemoryRepository) Toggle(userID, productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.pairs[userID]
	for i, pid := range ids {
		if pid == productID {
			r.pairs[userID] = append(ids[:i], ids[i+1:]...)
			return false, nil
		}
	}

	r.pairs[userID] = append(ids, productID)
	return true, nil
}

func (r *InMemoryRepository) ProductIDs(userID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.pairs[userID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}
