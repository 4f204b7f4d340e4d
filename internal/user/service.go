package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface lets other packages (orders, admin) depend on user
// operations without importing the concrete service.
type ServiceInterface interface {
	List() ([]User, error)
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	UpdateProfile(id int, upd ProfileUpdate) (User, error)
	ChangePassword(id int, current, next string) error
	ResetPassword(id int, next string) error
	UpdateRole(id int, role string) (User, error)
	UpdateStatus(id int, status string) (User, error)
	Delete(id int) error
	Register(u User) (User, error)
	Authenticate(email, password string) (User, error)
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

// Create is the admin-facing creation path; it hashes plaintext passwords
// but leaves already-hashed values alone so seeds can carry hashes.
func (s *Service) Create(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	if u.Password != "" && !looksLikeBcrypt(u.Password) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}

	return s.repo.Create(u)
}

// ProfileUpdate carries the optional fields a profile mutation may set.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *Service) UpdateProfile(id int, upd ProfileUpdate) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if upd.Email != nil && *upd.Email != existing.Email {
		if _, err := s.repo.GetByEmail(*upd.Email); err == nil {
			return User{}, ErrEmailExists
		} else if err != ErrNotFound {
			return User{}, err
		}
		existing.Email = *upd.Email
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Phone != nil {
		existing.Phone = upd.Phone
	}
	if upd.Address != nil {
		existing.Address = upd.Address
	}

	return s.repo.Update(id, existing)
}

func (s *Service) ChangePassword(id int, current, next string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	return s.ResetPassword(id, next)
}

func (s *Service) ResetPassword(id int, next string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(id, string(hashed))
}

func (s *Service) UpdateRole(id int, role string) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	existing.Role = role
	return s.repo.Update(id, existing)
}

func (s *Service) UpdateStatus(id int, status string) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	existing.Status = status
	return s.repo.Update(id, existing)
}

// Delete removes a customer account. Admin accounts are never hard-deleted.
func (s *Service) Delete(id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.Role == RoleAdmin {
		return ErrAdminProtected
	}
	return s.repo.Delete(id)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u.Password = string(hashed)
	u.Role = RoleCustomer
	u.Status = StatusActive
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(u.ID, now); err == nil {
		u.LastLogin = &now
	}

	return u, nil
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
