// Package api abstracts the marketplace backend behind a client
// interface with two implementations: an HTTP client speaking the
// documented wire contract and a deterministic in-memory mock.
package api

import (
	"context"

	"soldy/models"
)

// Client is the API surface the stores depend on. Implementations must
// be safe for concurrent use.
type Client interface {
	// Catalog.
	GetServices(ctx context.Context, q models.CatalogQuery) (models.Page, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetPriceRange(ctx context.Context) (models.PriceRange, error)

	// Cart.
	SyncCart(ctx context.Context, payload models.CartSyncPayload) error
	GetCart(ctx context.Context) ([]models.CartResponseItem, error)

	// Offers and requests.
	GetOffers(ctx context.Context, listingID string) ([]models.Offer, error)
	GetRequests(ctx context.Context) ([]models.Request, error)

	// Auth.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error)
	Me(ctx context.Context) (models.User, error)

	// SetToken installs the bearer token used by authenticated calls.
	// An empty string clears it.
	SetToken(token string)
}
