package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("wishlist entry not found")
	ErrDuplicate = errors.New("product already in wishlist")
)

// Repository provides access to wishlist rows. Duplicate prevention is a
// pre-insert lookup, not a table constraint, so Add reports ErrDuplicate
// from the Exists check rather than from the database.
type Repository interface {
	ListByUser(userID int) ([]Entry, error)
	Exists(userID, productID int) (bool, error)
	Add(userID, productID int) (Entry, error)
	DeleteByID(id int) error
	DeleteByUserAndProduct(userID, productID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int
}

func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	r := &InMemoryRepository{entries: make([]Entry, 0, len(seed)), nextID: 1}
	for _, e := range seed {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.entries = append(r.entries, e)
	}
	return r
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Exists(userID, productID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Add(userID, productID int) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := Entry{ID: r.nextID, UserID: userID, ProductID: productID}
	r.nextID++
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *InMemoryRepository) DeleteByID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) DeleteByUserAndProduct(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
