package user

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(seed ...User) *Service {
	return NewService(NewInMemoryRepository(seed))
}

func TestRegisterForcesCustomerRole(t *testing.T) {
	service := newTestService()

	created, err := service.Register(User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
		Role:     RoleAdmin, // must be ignored
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != RoleCustomer {
		t.Fatalf("expected customer role, got %q", created.Role)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected active status, got %q", created.Status)
	}
	if created.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored password is not a bcrypt hash of the input: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestService()

	if _, err := service.Register(User{Name: "Ada", Email: "ada@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register(User{Name: "Imposter", Email: "ada@example.com", Password: "other456"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	service := newTestService()
	if _, err := service.Register(User{Name: "Ada", Email: "ada@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := service.Authenticate("ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.LastLogin == nil {
		t.Fatal("expected last login to be stamped")
	}

	if _, err := service.Authenticate("ada@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	service := newTestService()
	created, err := service.Register(User{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := service.ChangePassword(created.ID, "wrong", "next456"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := service.ChangePassword(created.ID, "secret123", "next456"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := service.Authenticate("ada@example.com", "next456"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
}

func TestDeleteAdminProtected(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	service := newTestService(
		User{ID: 1, Name: "Root", Email: "root@noiratelier.com", Password: string(hash), Role: RoleAdmin, Status: StatusActive},
		User{ID: 2, Name: "Ada", Email: "ada@example.com", Password: string(hash), Role: RoleCustomer, Status: StatusActive},
	)

	if err := service.Delete(1); err != ErrAdminProtected {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}
	if err := service.Delete(2); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if _, err := service.GetByID(2); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSanitizeStripsPassword(t *testing.T) {
	u := Sanitize(User{ID: 1, Email: "ada@example.com", Password: "hash"})
	if u.Password != "" {
		t.Fatal("expected password to be stripped")
	}
}
