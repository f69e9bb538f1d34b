// Package app assembles the stores into one dependency-injected
// application object with explicit init and teardown. Nothing here is
// ambient global state: every store receives its collaborators.
package app

import (
	"context"
	"fmt"
	"time"

	"soldy/api"
	"soldy/config"
	"soldy/services/auth"
	"soldy/services/cart"
	"soldy/services/catalog"
	"soldy/services/offers"
	"soldy/services/requests"
	"soldy/services/ui"
	"soldy/storage"
	"soldy/utils"

	"go.uber.org/zap"
)

// App bundles the client-side stores over shared storage and API
// collaborators.
type App struct {
	Catalog  *catalog.Store
	Cart     *cart.Store
	Auth     *auth.Store
	Offers   *offers.Store
	Requests *requests.Store
	UI       *ui.Store

	API     api.Client
	Storage storage.Store

	closers []func() error
}

// New wires an App from AppConfig: it selects the storage driver
// (file, redis or memory) and the API driver (http or mock), then
// builds every store on top of them.
func New(clock utils.Clock, logger *zap.Logger) (*App, error) {
	a := &App{}

	cfg := config.AppConfig

	switch cfg.StorageDriver {
	case "redis":
		st, err := storage.NewRedisStore()
		if err != nil {
			return nil, fmt.Errorf("failed to open redis storage: %w", err)
		}
		a.Storage = st
		a.closers = append(a.closers, st.Close)
	case "memory":
		a.Storage = storage.NewMemoryStore()
	default:
		st, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		a.Storage = st
	}

	switch cfg.APIDriver {
	case "http":
		a.API = api.NewHTTPClient(cfg.APIBaseURL)
	default:
		latency := time.Duration(cfg.MockLatency) * time.Millisecond
		a.API = api.NewMock(clock, cfg.MockDataSeed, latency)
	}

	session := storage.NewMemoryStore()

	a.Catalog = catalog.NewStore(a.API, logger)
	a.Cart = cart.NewStore(a.API, a.Storage, logger)
	a.Auth = auth.NewStore(a.API, a.Storage, session, clock, logger)
	a.Offers = offers.NewStore(a.API, clock, logger)
	a.Requests = requests.NewStore(a.API, clock, logger)
	a.UI = ui.NewStore(a.Storage, clock, logger)

	return a, nil
}

// Init warms caches and restores any persisted session: facet data in
// the catalog store and the stored auth token, followed by a cart sync
// when the session resolved.
func (a *App) Init(ctx context.Context) {
	a.Catalog.Init(ctx)
	if err := a.Auth.CheckAuth(ctx); err == nil && a.Auth.IsAuthenticated() {
		if err := a.Cart.SyncAfterLogin(ctx); err != nil {
			// Best effort; the local cart stays authoritative.
			return
		}
	}
}

// Close releases storage connections.
func (a *App) Close() error {
	var firstErr error
	for _, close := range a.closers {
		if err := close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
