package catalog

import (
	"fmt"
	"testing"
	"time"

	"soldy/models"
)

func listing(id string, price float64, category string) models.Service {
	return models.Service{
		ID:          id,
		Name:        "Listing " + id,
		Description: "Overseas purchase of item " + id,
		Price:       price,
		Category:    category,
		Rating:      4.0,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestQueryCategoryFilterAndPriceSort(t *testing.T) {
	all := []models.Service{
		listing("a", 1000, "books"),
		listing("b", 5000, "electronics"),
		listing("c", 3000, "books"),
	}

	page := Query(all, models.CatalogQuery{
		Category:  []string{"books"},
		SortBy:    models.SortByPrice,
		SortOrder: models.SortAsc,
	})

	if page.Total != 2 {
		t.Fatalf("expected total 2 got %d", page.Total)
	}
	if page.TotalPages != 1 {
		t.Fatalf("expected totalPages 1 got %d", page.TotalPages)
	}
	if len(page.Items) != 2 || page.Items[0].Price != 1000 || page.Items[1].Price != 3000 {
		t.Fatalf("expected prices [1000 3000] got %#v", page.Items)
	}
}

func TestQuerySearchMatchesNameOrDescription(t *testing.T) {
	all := []models.Service{
		{ID: "a", Name: "Sneaker proxy purchase", Description: "fast"},
		{ID: "b", Name: "Console", Description: "includes SNEAKER charm"},
		{ID: "c", Name: "Book", Description: "paperback"},
	}

	page := Query(all, models.CatalogQuery{Search: "sneaker"})
	if page.Total != 2 {
		t.Fatalf("expected case-insensitive match on name or description, got total %d", page.Total)
	}

	// Empty search is a no-op.
	page = Query(all, models.CatalogQuery{Search: "  "})
	if page.Total != 3 {
		t.Fatalf("expected blank search to match everything, got total %d", page.Total)
	}
}

func TestQueryPriceBoundsInclusive(t *testing.T) {
	all := []models.Service{
		listing("a", 1000, "books"),
		listing("b", 2000, "books"),
		listing("c", 3000, "books"),
	}

	page := Query(all, models.CatalogQuery{MinPrice: floatPtr(1000), MaxPrice: floatPtr(2000)})
	if page.Total != 2 {
		t.Fatalf("expected inclusive bounds to keep 2 listings, got %d", page.Total)
	}
	for _, svc := range page.Items {
		if svc.Price < 1000 || svc.Price > 2000 {
			t.Fatalf("listing %s price %v outside bounds", svc.ID, svc.Price)
		}
	}
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	all := []models.Service{
		listing("a", 1000, "books"),
		listing("b", 9000, "books"),
		listing("c", 1000, "electronics"),
	}

	page := Query(all, models.CatalogQuery{
		Category: []string{"books"},
		MaxPrice: floatPtr(2000),
	})
	if page.Total != 1 || page.Items[0].ID != "a" {
		t.Fatalf("expected only listing a, got %#v", page.Items)
	}
}

func TestQuerySortByDate(t *testing.T) {
	old := listing("old", 1, "books")
	old.CreatedAt = "2023-01-01T00:00:00Z"
	mid := listing("mid", 2, "books")
	mid.CreatedAt = "2023-06-01T00:00:00Z"
	recent := listing("new", 3, "books")
	recent.CreatedAt = "2024-01-01T00:00:00Z"

	page := Query([]models.Service{mid, recent, old}, models.CatalogQuery{
		SortBy:    models.SortByDate,
		SortOrder: models.SortDesc,
	})
	got := []string{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v got %v", want, got)
		}
	}
}

func TestQueryUnknownSortKeyKeepsInputOrder(t *testing.T) {
	all := []models.Service{
		listing("b", 2, "books"),
		listing("a", 1, "books"),
	}
	page := Query(all, models.CatalogQuery{SortBy: "popularity"})
	if page.Items[0].ID != "b" || page.Items[1].ID != "a" {
		t.Fatalf("expected input order preserved, got %#v", page.Items)
	}
}

func TestQueryPaginationDefaults(t *testing.T) {
	var all []models.Service
	for i := 0; i < 30; i++ {
		all = append(all, listing(fmt.Sprintf("s%d", i), float64(i), "books"))
	}

	page := Query(all, models.CatalogQuery{Page: -3, Limit: 0})
	if page.Page != models.DefaultPage || page.Limit != models.DefaultLimit {
		t.Fatalf("expected defaults %d/%d got %d/%d",
			models.DefaultPage, models.DefaultLimit, page.Page, page.Limit)
	}
	if len(page.Items) != models.DefaultLimit {
		t.Fatalf("expected %d items got %d", models.DefaultLimit, len(page.Items))
	}
}

func TestQueryPagesAreDisjointAndExhaustive(t *testing.T) {
	var all []models.Service
	for i := 0; i < 25; i++ {
		all = append(all, listing(fmt.Sprintf("s%d", i), float64(i), "books"))
	}

	seen := make(map[string]bool)
	first := Query(all, models.CatalogQuery{Page: 1, Limit: 10})
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", first.TotalPages)
	}
	for p := 1; p <= first.TotalPages; p++ {
		page := Query(all, models.CatalogQuery{Page: p, Limit: 10})
		if page.Total != 25 {
			t.Fatalf("page %d reported total %d", p, page.Total)
		}
		for _, svc := range page.Items {
			if seen[svc.ID] {
				t.Fatalf("listing %s appeared on more than one page", svc.ID)
			}
			seen[svc.ID] = true
		}
	}
	if len(seen) != 25 {
		t.Fatalf("pages covered %d of 25 listings", len(seen))
	}
}

func TestQueryPageBeyondEndIsEmpty(t *testing.T) {
	all := []models.Service{listing("a", 1, "books")}

	page := Query(all, models.CatalogQuery{Page: 99, Limit: 10})
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page got %d items", len(page.Items))
	}
	if page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("expected total/totalPages unchanged, got %d/%d", page.Total, page.TotalPages)
	}
}

func TestQueryEmptyResultHasZeroPages(t *testing.T) {
	page := Query(nil, models.CatalogQuery{})
	if page.Total != 0 || page.TotalPages != 0 {
		t.Fatalf("expected zero total and totalPages, got %d/%d", page.Total, page.TotalPages)
	}
}

func TestQueryNeverExceedsInputSize(t *testing.T) {
	var all []models.Service
	for i := 0; i < 40; i++ {
		all = append(all, listing(fmt.Sprintf("s%d", i), float64(i*100), "books"))
	}

	queries := []models.CatalogQuery{
		{},
		{Search: "item"},
		{Category: []string{"books", "other"}},
		{MinPrice: floatPtr(500), MaxPrice: floatPtr(2500)},
	}
	for _, q := range queries {
		page := Query(all, q)
		if page.Total > len(all) {
			t.Fatalf("query %#v reported total %d over input size %d", q, page.Total, len(all))
		}
	}
}
