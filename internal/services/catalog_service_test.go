package services_test

import (
	"errors"
	"testing"

	"tradepost/internal/repos"
	"tradepost/internal/services"
)

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	return services.NewCatalogService(repos.NewItemRepo(memdb(t)))
}

func TestCatalogCreateAndGet(t *testing.T) {
	svc := newCatalog(t)

	it, err := svc.Create("seller-2", services.NewItem{
		Name:      "Record Player",
		Stock:     3,
		Price:     120,
		ImageURLs: []string{"items/rp/main.jpg"},
		Category:  "Audio",
	})
	if err != nil {
		t.Fatal(err)
	}
	if it.Description != "No description available" {
		t.Fatalf("empty description should get the default, got %q", it.Description)
	}

	got, err := svc.Get(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OwnerID != "seller-2" || got.Name != "Record Player" {
		t.Fatalf("bad item: %+v", got)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := newCatalog(t)

	cases := []services.NewItem{
		{Name: "", Stock: 1, Price: 1},
		{Name: "x", Stock: -1, Price: 1},
		{Name: "x", Stock: 1, Price: -0.01},
	}
	for i, in := range cases {
		if _, err := svc.Create("seller-2", in); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("case %d: want ErrValidation, got %v", i, err)
		}
	}
}

func TestCatalogSoftDeleteHidesItem(t *testing.T) {
	svc := newCatalog(t)

	it, err := svc.Delete("seller-1", "item-a")
	if err != nil {
		t.Fatal(err)
	}
	if !it.Deleted {
		t.Fatal("returned item should carry the deleted flag")
	}

	if _, err := svc.Get("item-a"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("deleted item must read as absent, got %v", err)
	}
	items, err := svc.ListByOwner("seller-1")
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range items {
		if i.ID == "item-a" {
			t.Fatal("deleted item must not appear in owner listing")
		}
	}
	batch, err := svc.Batch([]string{"item-a", "item-b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 1 || batch[0].ID != "item-b" {
		t.Fatalf("batch must skip deleted items, got %+v", batch)
	}
}

func TestCatalogOwnerOnlyMutation(t *testing.T) {
	svc := newCatalog(t)

	in := services.NewItem{Name: "Desk Lamp", Stock: 10, Price: 24.50}
	if _, err := svc.Update("intruder", "item-a", in); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("update by non-owner: want ErrForbidden, got %v", err)
	}
	if _, err := svc.Delete("intruder", "item-a"); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("delete by non-owner: want ErrForbidden, got %v", err)
	}
	// owner still sees the item untouched
	it, err := svc.Get("item-a")
	if err != nil {
		t.Fatal(err)
	}
	if it.Stock != 10 {
		t.Fatalf("item must be unchanged, got %+v", it)
	}
}

func TestCatalogListClampsAmount(t *testing.T) {
	svc := newCatalog(t)

	// both items live, ask for far more than the cap allows
	items, err := svc.List(500)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want the 2 seeded items, got %d", len(items))
	}
	one, err := svc.List(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 {
		t.Fatalf("want 1 item, got %d", len(one))
	}
}

func TestCatalogSearch(t *testing.T) {
	svc := newCatalog(t)

	hits, err := svc.Search("lamp")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != "item-a" {
		t.Fatalf("want item-a for 'lamp', got %+v", hits)
	}
	if _, err := svc.Search(""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("empty query: want ErrValidation, got %v", err)
	}
}
