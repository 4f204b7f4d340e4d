package wishlist

import (
	"github.com/noiratelier/storefront-backend/internal/product"
)

type ServiceInterface interface {
	ListByUser(userID int) ([]Entry, error)
	Add(userID, productID int) (Entry, error)
	RemoveByID(id int) error
	Remove(userID, productID int) error
}

type Service struct {
	repo     Repository
	products product.Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) ListByUser(userID int) ([]Entry, error) {
	return s.repo.ListByUser(userID)
}

// Add checks for an existing row first; the table itself carries no
// uniqueness constraint on (user, product).
func (s *Service) Add(userID, productID int) (Entry, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return Entry{}, err
	}

	exists, err := s.repo.Exists(userID, productID)
	if err != nil {
		return Entry{}, err
	}
	if exists {
		return Entry{}, ErrDuplicate
	}
	return s.repo.Add(userID, productID)
}

func (s *Service) RemoveByID(id int) error {
	return s.repo.DeleteByID(id)
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.DeleteByUserAndProduct(userID, productID)
}
