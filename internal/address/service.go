package address

import "errors"

// ErrForbidden means the address exists but belongs to another user.
var ErrForbidden = errors.New("address belongs to another user")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID int) ([]Address, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(userID int, a Address) (Address, error) {
	a.UserID = userID
	return s.repo.Create(a)
}

// Update enforces ownership before writing.
func (s *Service) Update(userID, addressID int, a Address) (Address, error) {
	existing, err := s.repo.GetByID(addressID)
	if err != nil {
		return Address{}, err
	}
	if existing.UserID != userID {
		return Address{}, ErrForbidden
	}

	a.ID = addressID
	a.UserID = userID
	if a.Country == "" {
		a.Country = existing.Country
	}
	return s.repo.Update(a)
}

func (s *Service) Delete(userID, addressID int) error {
	existing, err := s.repo.GetByID(addressID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(addressID)
}
