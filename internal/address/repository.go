package address

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	ListByUser(userID int) ([]Address, error)
	GetByID(id int) (Address, error)
	Create(a Address) (Address, error)
	Update(a Address) (Address, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	addresses []Address
	nextID    int
}

func NewInMemoryRepository(seed []Address) *InMemoryRepository {
	r := &InMemoryRepository{addresses: make([]Address, 0, len(seed)), nextID: 1}
	for _, a := range seed {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.addresses = append(r.addresses, a)
	}
	return r
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Address, 0)
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.ID == id {
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	if a.Country == "" {
		a.Country = "USA"
	}
	r.addresses = append(r.addresses, a)
	return a, nil
}

func (r *InMemoryRepository) Update(a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.addresses {
		if existing.ID == a.ID {
			a.CreatedAt = existing.CreatedAt
			r.addresses[i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.addresses {
		if a.ID == id {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
