package cart

import (
	"sort"

	"github.com/noiratelier/storefront-backend/internal/product"
)

// Item is one cart line with product details attached.
type Item struct {
	product.Summary
	Quantity int `json:"quantity"`
}

// Service resolves the stored quantity map against the catalog.
type Service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) GetCart(userID int) ([]Item, error) {
	cart, err := s.repo.GetCart(userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(cart)
}

// Adjust adds delta (which may be negative) to a product's quantity and
// returns the full cart. A zero delta just reads the cart back.
func (s *Service) Adjust(userID, productID, delta int) ([]Item, error) {
	if delta == 0 {
		return s.GetCart(userID)
	}

	cart, err := s.repo.Adjust(userID, productID, delta)
	if err != nil {
		return nil, err
	}
	return s.resolve(cart)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}

func (s *Service) resolve(cart map[int]int) ([]Item, error) {
	if len(cart) == 0 {
		return []Item{}, nil
	}

	ids := make([]int, 0, len(cart))
	for pid := range cart {
		ids = append(ids, pid)
	}
	sort.Ints(ids)

	products, err := s.products.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(products))
	for _, p := range products {
		items = append(items, Item{Summary: p.Summary(), Quantity: cart[p.ID]})
	}
	return items, nil
}
