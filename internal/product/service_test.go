package product

import (
	"testing"
)

func TestSuggestQueryLength(t *testing.T) {
	service := NewService(NewInMemoryRepository(SeedCatalog()))

	// short queries return nothing without touching the repository
	for _, q := range []string{"", "a", " b "} {
		out, err := service.Suggest(q)
		if err != nil {
			t.Fatalf("suggest %q: %v", q, err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no suggestions for %q, got %d", q, len(out))
		}
	}

	out, err := service.Suggest("leather")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected suggestions for 'leather'")
	}
	if len(out) > 6 {
		t.Fatalf("expected at most 6 suggestions, got %d", len(out))
	}
}

func TestSeedCatalog(t *testing.T) {
	catalog := SeedCatalog()
	if len(catalog) != 8 {
		t.Fatalf("expected 8 seed products, got %d", len(catalog))
	}
	for _, p := range catalog {
		if p.Name == "" || p.Brand == "" || p.Price <= 0 || p.Category == "" {
			t.Fatalf("incomplete seed product %+v", p)
		}
	}

	service := NewService(NewInMemoryRepository(nil))
	count, err := service.Seed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if count != len(catalog) {
		t.Fatalf("expected %d seeded, got %d", len(catalog), count)
	}
}

func TestListByGender(t *testing.T) {
	men := "men"
	women := "women"
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Coat", Brand: "A", Price: 100, Category: "Outerwear", Gender: &men},
		{ID: 2, Name: "Tote", Brand: "B", Price: 200, Category: "Bags", Gender: &women},
		{ID: 3, Name: "Gloves", Brand: "C", Price: 50, Category: "Accessories"},
	})
	service := NewService(repo)

	all, err := service.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	menOnly, err := service.List("men")
	if err != nil {
		t.Fatalf("list men: %v", err)
	}
	if len(menOnly) != 1 || menOnly[0].ID != 1 {
		t.Fatalf("unexpected men filter result %+v", menOnly)
	}
}
