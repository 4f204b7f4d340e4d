package user

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

var userCols = []string{
	"user_id", "name", "email", "password", "role", "status",
	"phone", "address", "last_login", "created_at", "updated_at",
}

func TestGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userCols).
		AddRow(2, "Ada", "ada@example.com", "hash", "customer", "active",
			nil, nil, nil, now, now)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	u, err := repo.GetByEmail("ada@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if u.ID != 2 || u.Name != "Ada" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.Phone != nil || u.LastLogin != nil {
		t.Fatalf("expected nil optional fields, got %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE user_id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(userCols))

	repo := NewPostgresRepository(db)
	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateDefaultsRoleAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userCols).
		AddRow(5, "Grace", "grace@example.com", "hash", "customer", "active",
			nil, nil, nil, now, now)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Grace", "grace@example.com", "hash", "customer", "active", nil, nil).
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	created, err := repo.Create(User{Name: "Grace", Email: "grace@example.com", Password: "hash"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 5 || created.Role != RoleCustomer || created.Status != StatusActive {
		t.Fatalf("unexpected user %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE user_id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	if err := repo.Delete(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
