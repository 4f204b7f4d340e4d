package product

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	// List returns the whole catalog, optionally filtered by gender tag.
	List(gender string) ([]Product, error)
	GetByID(id int) (Product, error)
	// ListByIDs returns products in the same order as the ids slice; ids
	// that do not resolve are omitted.
	ListByIDs(ids []int) ([]Product, error)
	// Suggest matches name, brand or category for autocomplete.
	Suggest(query string, limit int) ([]Product, error)
	// ReplaceAll wipes the catalog and inserts the seed set.
	ReplaceAll(seed []Product) (int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{products: make([]Product, 0, len(seed)), nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products = append(r.products, p)
	}
	return r
}

func (r *InMemoryRepository) List(gender string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if gender != "" && (p.Gender == nil || *p.Gender != gender) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range r.products {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Suggest(query string, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	out := make([]Product, 0, limit)
	for _, p := range r.products {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ReplaceAll(seed []Product) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = r.products[:0]
	r.nextID = 1
	for _, p := range seed {
		p.ID = r.nextID
		r.nextID++
		r.products = append(r.products, p)
	}
	return len(r.products), nil
}
