package post

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	List() []Post
	GetByID(id int) (Post, error)
	CommentsByPost(postID int) []Comment
	AddComment(comment Comment) (Comment, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu            sync.RWMutex
	posts         []Post
	comments      []Comment
	nextCommentID int
}

func NewInMemoryRepository(seed []Post) *InMemoryRepository {
	r := &InMemoryRepository{
		posts:         make([]Post, 0, len(seed)),
		nextCommentID: 1,
	}
	r.posts = append(r.posts, seed...)
	return r
}

func (r *InMemoryRepository) List() []Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	for i := range out {
		out[i].CommentCount = r.countLocked(out[i].ID)
	}
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			p.CommentCount = r.countLocked(id)
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func (r *InMemoryRepository) CommentsByPost(postID int) []Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Comment, 0)
	for _, cm := range r.comments {
		if cm.PostID == postID {
			out = append(out, cm)
		}
	}
	return out
}

func (r *InMemoryRepository) AddComment(comment Comment) (Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.posts {
		if p.ID == comment.PostID {
			found = true
			break
		}
	}
	if !found {
		return Comment{}, ErrNotFound
	}

	comment.ID = r.nextCommentID
	r.nextCommentID++
	r.comments = append(r.comments, comment)
	return comment, nil
}

func (r *InMemoryRepository) countLocked(postID int) int {
	n := 0
	for _, cm := range r.comments {
		if cm.PostID == postID {
			n++
		}
	}
	return n
}
