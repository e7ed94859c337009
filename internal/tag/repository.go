package tag

import "sync"

type Repository interface {
	List() []Tag
	NamesForProduct(productID int) []string
	NamesForPost(postID int) []string
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu          sync.RWMutex
	tags        []Tag
	productTags map[int][]int
	postTags    map[int][]int
}

func NewInMemoryRepository(seed []Tag) *InMemoryRepository {
	return &InMemoryRepository{
		tags:        seed,
		productTags: make(map[int][]int),
		postTags:    make(map[int][]int),
	}
}

// LinkProduct attaches a tag to a product (tests only).
func (r *InMemoryRepository) LinkProduct(productID, tagID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.productTags[productID] = append(r.productTags[productID], tagID)
}

// LinkPost attaches a tag to a post (tests only).
func (r *InMemoryRepository) LinkPost(postID, tagID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postTags[postID] = append(r.postTags[postID], tagID)
}

func (r *InMemoryRepository) List() []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r *InMemoryRepository) NamesForProduct(productID int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(r.productTags[productID])
}

func (r *InMemoryRepository) NamesForPost(postID int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(r.postTags[postID])
}

func (r *InMemoryRepository) names(ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, t := range r.tags {
			if t.ID == id {
				out = append(out, t.Name)
			}
		}
	}
	return out
}
