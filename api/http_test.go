package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"soldy/models"
)

func envelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"data":    data,
		"message": "",
		"success": true,
	}); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestGetServicesEncodesQueryAndDecodesEnvelope(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		envelope(t, w, models.Page{
			Items:      []models.Service{{ID: "service-1", Name: "Sneakers", Price: 1200}},
			Total:      1,
			Page:       2,
			Limit:      12,
			TotalPages: 1,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	min := 100.0
	page, err := c.GetServices(context.Background(), models.CatalogQuery{
		Page:     2,
		Search:   "sneakers",
		Category: []string{"clothing", "shoes"},
		MinPrice: &min,
		SortBy:   models.SortByPrice,
	})
	if err != nil {
		t.Fatalf("GetServices: %v", err)
	}

	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].ID != "service-1" {
		t.Fatalf("unexpected page: %#v", page)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("search") != "sneakers" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if cats := gotQuery["category"]; len(cats) != 2 || cats[0] != "clothing" || cats[1] != "shoes" {
		t.Fatalf("unexpected categories: %v", gotQuery["category"])
	}
	if gotQuery.Get("minPrice") != "100" {
		t.Fatalf("unexpected minPrice: %q", gotQuery.Get("minPrice"))
	}
	if gotQuery.Get("sortBy") != "price" {
		t.Fatalf("unexpected sortBy: %q", gotQuery.Get("sortBy"))
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelope(t, w, models.User{ID: "user-1", Email: "u@example.com"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("abc123")
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestHTTPErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	if _, err := c.GetCategories(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestUnsuccessfulEnvelopeSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data":    nil,
			"message": "listing not found",
			"success": false,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	if _, err := c.GetOffers(context.Background(), "service-1"); err == nil {
		t.Fatal("expected error when success is false")
	}
}

func TestSyncCartPostsPayload(t *testing.T) {
	var got models.CartSyncPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart/sync" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		envelope(t, w, map[string]int{"synced": 1})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	err := c.SyncCart(context.Background(), models.CartSyncPayload{
		Items: []models.CartSyncItem{{ServiceID: "service-1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("SyncCart: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ServiceID != "service-1" || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected payload: %#v", got)
	}
}
