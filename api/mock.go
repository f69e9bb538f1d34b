package api

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"soldy/catalog"
	"soldy/models"
	"soldy/utils"
)

var mockCategories = []string{"electronics", "clothing", "books", "other"}

var mockPriceRange = models.PriceRange{Min: 1000, Max: 10000}

// Mock is the in-memory backend stand-in. The dataset is generated once
// from a fixed seed so results are reproducible, and simulated network
// latency goes through the injected clock so tests run synchronously.
type Mock struct {
	mu       sync.Mutex
	clock    utils.Clock
	latency  time.Duration
	services []models.Service
	requests []models.Service
	offers   []models.Offer
	userReqs []models.Request
	cart     []models.CartResponseItem

	// failWith, when set, is returned by every call. Used to exercise
	// the stores' failure paths.
	failWith error
}

// NewMock builds a mock client with a seeded dataset.
func NewMock(clock utils.Clock, seed int64, latency time.Duration) *Mock {
	m := &Mock{clock: clock, latency: latency}
	m.generate(seed)
	return m
}

// SetError makes every subsequent call fail with err; pass nil to
// restore normal operation.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// SetToken is a no-op; the mock has no real authentication.
func (m *Mock) SetToken(string) {}

func (m *Mock) delay(ctx context.Context) error {
	if err := m.clock.Sleep(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failWith
}

func (m *Mock) GetServices(ctx context.Context, q models.CatalogQuery) (models.Page, error) {
	if err := m.delay(ctx); err != nil {
		return models.Page{}, err
	}
	m.mu.Lock()
	all := m.services
	if q.CatalogType == models.CatalogTypeRequests {
		all = m.requests
	}
	m.mu.Unlock()
	return catalog.Query(all, q), nil
}

func (m *Mock) GetCategories(ctx context.Context) ([]string, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}
	out := make([]string, len(mockCategories))
	copy(out, mockCategories)
	return out, nil
}

func (m *Mock) GetPriceRange(ctx context.Context) (models.PriceRange, error) {
	if err := m.delay(ctx); err != nil {
		return models.PriceRange{}, err
	}
	return mockPriceRange, nil
}

// SyncCart replaces the remote cart with the pushed items, resolving
// each serviceId against the dataset.
func (m *Mock) SyncCart(ctx context.Context, payload models.CartSyncPayload) error {
	if err := m.delay(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	remote := make([]models.CartResponseItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		svc, ok := m.findService(item.ServiceID)
		if !ok {
			continue
		}
		remote = append(remote, models.CartResponseItem{
			Service:         svc,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
		})
	}
	m.cart = remote
	return nil
}

func (m *Mock) GetCart(ctx context.Context) ([]models.CartResponseItem, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartResponseItem, len(m.cart))
	copy(out, m.cart)
	return out, nil
}

func (m *Mock) GetOffers(ctx context.Context, listingID string) ([]models.Offer, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Offer
	for _, offer := range m.offers {
		if offer.ListingID == listingID {
			out = append(out, offer)
		}
	}
	return out, nil
}

func (m *Mock) GetRequests(ctx context.Context) ([]models.Request, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Request, len(m.userReqs))
	copy(out, m.userReqs)
	return out, nil
}

func (m *Mock) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	if err := m.delay(ctx); err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{
		User: models.User{
			ID:        "1",
			Email:     email,
			Name:      "Test User",
			Role:      models.RoleUser,
			CreatedAt: m.clock.Now().UTC().Format(time.RFC3339),
		},
		Token: "mock-token",
	}, nil
}

func (m *Mock) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	if err := m.delay(ctx); err != nil {
		return models.AuthResponse{}, err
	}
	role := data.Role
	if role == "" {
		role = models.RoleUser
	}
	return models.AuthResponse{
		User: models.User{
			ID:        fmt.Sprintf("%d", m.clock.Now().UnixMilli()),
			Email:     data.Email,
			Name:      data.Name,
			Role:      role,
			Phone:     data.Phone,
			CreatedAt: m.clock.Now().UTC().Format(time.RFC3339),
		},
		Token: "mock-token",
	}, nil
}

func (m *Mock) Me(ctx context.Context) (models.User, error) {
	if err := m.delay(ctx); err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:        "1",
		Email:     "test@example.com",
		Name:      "Test User",
		Role:      models.RoleUser,
		CreatedAt: m.clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ServiceByID looks a listing up across both catalog types.
func (m *Mock) ServiceByID(id string) (models.Service, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findService(id)
}

// Callers hold m.mu.
func (m *Mock) findService(id string) (models.Service, bool) {
	for _, svc := range m.services {
		if svc.ID == id {
			return svc, true
		}
	}
	for _, svc := range m.requests {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// generate builds the seeded dataset: 100 service listings, 100
// request listings, a dozen purchase requests and a couple of offers
// on the first listing.
func (m *Mock) generate(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	now := m.clock.Now()

	randomCreatedAt := func() string {
		back := time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))
		return now.Add(-back).UTC().Format(time.RFC3339)
	}

	m.services = make([]models.Service, 0, 100)
	m.requests = make([]models.Service, 0, 100)
	for i := 1; i <= 100; i++ {
		base := models.Service{
			Price:       float64(rng.Intn(9000) + 1000),
			Category:    mockCategories[rng.Intn(len(mockCategories))],
			Images:      []string{},
			BuyerID:     fmt.Sprintf("buyer-%d", rng.Intn(5)+1),
			Rating:      float64(rng.Intn(21)+30) / 10, // 3.0-5.0
			ReviewCount: rng.Intn(50),
			CreatedAt:   randomCreatedAt(),
		}

		svc := base
		svc.ID = fmt.Sprintf("service-%d", i)
		svc.Name = fmt.Sprintf("Buy-for-me service %d", i)
		svc.Description = fmt.Sprintf("Professional overseas purchasing with full support. Service %d covers sourcing, payment and shipping.", i)
		m.services = append(m.services, svc)

		req := base
		req.ID = fmt.Sprintf("request-listing-%d", i)
		req.Name = fmt.Sprintf("Purchase request %d", i)
		req.Description = "Need help buying and shipping an item from the US."
		m.requests = append(m.requests, req)
	}

	m.userReqs = make([]models.Request, 0, 12)
	for i := 1; i <= 12; i++ {
		m.userReqs = append(m.userReqs, models.Request{
			ID:          fmt.Sprintf("request-%d", i),
			Title:       fmt.Sprintf("Purchase request %d", i),
			Description: "Need an item bought, inspected and shipped quickly.",
			Budget:      float64(rng.Intn(4000) + 3000),
			Category:    mockCategories[rng.Intn(len(mockCategories))],
			Address:     "10 Tverskaya st, Moscow",
			Deadline:    now.Add(time.Duration(i+2) * 24 * time.Hour).UTC().Format(time.RFC3339),
			UserID:      "user-1",
			CreatedAt:   now.Add(-time.Duration(i) * 12 * time.Hour).UTC().Format(time.RFC3339),
		})
	}

	m.offers = []models.Offer{
		{
			ID:        "offer-1",
			ListingID: "service-1",
			BuyerID:   "buyer-7",
			BuyerName: "Buyer Pro",
			Price:     4500,
			EtaDays:   2,
			Comment:   "Ready to take this on, experienced with electronics.",
			Status:    models.OfferProposed,
			CreatedAt: now.Add(-36 * time.Hour).UTC().Format(time.RFC3339),
		},
		{
			ID:        "offer-2",
			ListingID: "service-1",
			BuyerID:   "buyer-9",
			BuyerName: "Express Team",
			Price:     4800,
			EtaDays:   1,
			Comment:   "Ships the day of purchase, insurance included.",
			Status:    models.OfferProposed,
			CreatedAt: now.Add(-18 * time.Hour).UTC().Format(time.RFC3339),
		},
	}
}
