package product

import "strings"

// ServiceInterface is consumed by the order and wishlist packages to
// enrich their responses with product details.
type ServiceInterface interface {
	List(gender string) ([]Product, error)
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
	Suggest(query string) ([]Product, error)
	Seed() (int, error)
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(gender string) ([]Product, error) {
	return s.repo.List(gender)
}

func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

const suggestionLimit = 6

func (s *Service) Suggest(query string) ([]Product, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []Product{}, nil
	}
	return s.repo.Suggest(query, suggestionLimit)
}

func (s *Service) Seed() (int, error) {
	return s.repo.ReplaceAll(SeedCatalog())
}
