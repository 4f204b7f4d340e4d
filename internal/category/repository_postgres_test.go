package category

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestListCategories(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"category", "count"}).
		AddRow("Bags", 1).
		AddRow("Outerwear", 4).
		AddRow("Shoes", 2)
	mock.ExpectQuery(`SELECT category, COUNT\(\*\)`).WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	items, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(items))
	}
	if items[1].Name != "Outerwear" || items[1].ProductCount != 4 {
		t.Fatalf("unexpected item %+v", items[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
