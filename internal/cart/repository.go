package cart

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository stores a user's cart as a product-id to quantity map on the
// user row. Mutations return the full map after the change.
type Repository interface {
	GetCart(userID int) (map[int]int, error)
	// Adjust adds delta to the product's quantity; entries that drop to
	// zero or below are removed.
	Adjust(userID, productID, delta int) (map[int]int, error)
	Clear(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]map[int]int
}

func NewInMemoryRepository(userIDs ...int) *InMemoryRepository {
	carts := make(map[int]map[int]int, len(userIDs))
	for _, id := range userIDs {
		carts[id] = map[int]int{}
	}
	return &InMemoryRepository{carts: carts}
}

func (r *InMemoryRepository) GetCart(userID int) (map[int]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[int]int, len(cart))
	for pid, qty := range cart {
		out[pid] = qty
	}
	return out, nil
}

func (r *InMemoryRepository) Adjust(userID, productID, delta int) (map[int]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cart[productID] += delta
	if cart[productID] <= 0 {
		delete(cart, productID)
	}
	out := make(map[int]int, len(cart))
	for pid, qty := range cart {
		out[pid] = qty
	}
	return out, nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[userID]; !ok {
		return ErrNotFound
	}
	r.carts[userID] = map[int]int{}
	return nil
}
