// Package catalog holds the catalog store: current query parameters,
// the current page of results and cached facet data, orchestrating
// calls into the API client.
package catalog

import (
	"context"
	"sync"

	"soldy/api"
	"soldy/models"

	"go.uber.org/zap"
)

var defaultCategories = []string{"electronics", "clothing", "books", "other"}

var defaultPriceRange = models.PriceRange{Min: 1000, Max: 10000}

// FilterPatch is a partial filter update. Nil fields leave the current
// value unchanged; use ResetFilters to clear everything.
type FilterPatch struct {
	Search      *string
	Category    []string
	Brand       []string
	Subcategory []string
	MinPrice    *float64
	MaxPrice    *float64
	SortBy      *string
	SortOrder   *string
	BuyerID     *string
}

// Store owns catalog query state. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	api    api.Client
	logger *zap.Logger

	filters    models.CatalogFilter
	items      []models.Service
	pagination models.Pagination
	loading    bool
	lastErr    error

	categories []string
	priceRange models.PriceRange

	// loadSeq identifies the most recent LoadServices call. A load
	// whose token is no longer current when its response arrives is
	// stale and its result is discarded.
	loadSeq uint64
}

// NewStore builds a catalog store with default pagination and facet
// values. Call Init to warm the facet caches from the backend.
func NewStore(client api.Client, logger *zap.Logger) *Store {
	return &Store{
		api:        client,
		logger:     logger,
		pagination: models.Pagination{Page: models.DefaultPage, Limit: models.DefaultLimit},
		categories: defaultCategories,
		priceRange: defaultPriceRange,
	}
}

// Init loads both facet caches concurrently.
func (s *Store) Init(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.LoadCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		s.LoadPriceRange(ctx)
	}()
	wg.Wait()
}

// SetFilters merges a partial filter change into the current filters
// and resets the page to 1. Changing filters always returns the user
// to the first page.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	if patch.Category != nil {
		s.filters.Category = patch.Category
	}
	if patch.Brand != nil {
		s.filters.Brand = patch.Brand
	}
	if patch.Subcategory != nil {
		s.filters.Subcategory = patch.Subcategory
	}
	if patch.MinPrice != nil {
		s.filters.MinPrice = patch.MinPrice
	}
	if patch.MaxPrice != nil {
		s.filters.MaxPrice = patch.MaxPrice
	}
	if patch.SortBy != nil {
		s.filters.SortBy = *patch.SortBy
	}
	if patch.SortOrder != nil {
		s.filters.SortOrder = *patch.SortOrder
	}
	if patch.BuyerID != nil {
		s.filters.BuyerID = *patch.BuyerID
	}
	s.pagination.Page = models.DefaultPage
}

// ResetFilters clears all filters and resets the page to 1.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.CatalogFilter{}
	s.pagination.Page = models.DefaultPage
}

// SetPage changes the current page without altering filters.
func (s *Store) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = models.DefaultPage
	}
	s.pagination.Page = page
}

// LoadServices fetches the current page of results for the given
// catalog type. A fetch failure clears the results and is surfaced
// through the returned error and LastErr; callers can distinguish
// "no results" from "fetch failed". If a newer load starts before this
// one completes, the stale result is discarded.
func (s *Store) LoadServices(ctx context.Context, catalogType string) error {
	s.mu.Lock()
	s.loadSeq++
	token := s.loadSeq
	s.loading = true
	q := models.CatalogQuery{
		Page:        s.pagination.Page,
		Limit:       s.pagination.Limit,
		Search:      s.filters.Search,
		Category:    s.filters.Category,
		Brand:       s.filters.Brand,
		Subcategory: s.filters.Subcategory,
		MinPrice:    s.filters.MinPrice,
		MaxPrice:    s.filters.MaxPrice,
		SortBy:      s.filters.SortBy,
		SortOrder:   s.filters.SortOrder,
		BuyerID:     s.filters.BuyerID,
		CatalogType: catalogType,
	}
	s.mu.Unlock()

	page, err := s.api.GetServices(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadSeq {
		// Superseded by a newer load; that call owns the state now.
		return nil
	}
	s.loading = false

	if err != nil {
		s.logger.Error("failed to load services", zap.Error(err))
		s.items = nil
		s.pagination.Total = 0
		s.pagination.TotalPages = 0
		s.lastErr = err
		return err
	}

	s.items = page.Items
	s.pagination = models.Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	s.lastErr = nil
	return nil
}

// LoadCategories fetches and caches the category facet, falling back
// to the fixed defaults on failure.
func (s *Store) LoadCategories(ctx context.Context) []string {
	categories, err := s.api.GetCategories(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Warn("failed to load categories, using defaults", zap.Error(err))
		s.categories = defaultCategories
	} else {
		s.categories = categories
	}
	return s.categories
}

// LoadPriceRange fetches and caches the price-range facet, falling
// back to the fixed default on failure.
func (s *Store) LoadPriceRange(ctx context.Context) models.PriceRange {
	priceRange, err := s.api.GetPriceRange(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Warn("failed to load price range, using default", zap.Error(err))
		s.priceRange = defaultPriceRange
	} else {
		s.priceRange = priceRange
	}
	return s.priceRange
}

// Services returns the current page of results.
func (s *Store) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Service, len(s.items))
	copy(out, s.items)
	return out
}

// Filters returns the current filter state.
func (s *Store) Filters() models.CatalogFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Pagination returns the current pagination metadata.
func (s *Store) Pagination() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// IsLoading reports whether a load is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastErr returns the error from the most recent completed load, or
// nil after a successful load.
func (s *Store) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Categories returns the cached category facet.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// PriceRange returns the cached price-range facet.
func (s *Store) PriceRange() models.PriceRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priceRange
}
