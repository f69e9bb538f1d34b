// Package cart holds the cart store: line items keyed by service and
// selected options, persisted to durable local storage on every
// mutation.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"soldy/api"
	"soldy/models"
	"soldy/storage"

	"go.uber.org/zap"
)

// Store owns the cart line items. Safe for concurrent use. Every
// mutation writes the full item slice through to durable storage.
type Store struct {
	mu      sync.Mutex
	api     api.Client
	storage storage.Store
	logger  *zap.Logger

	items []models.CartItem
	open  bool
}

// NewStore builds a cart store and restores any persisted items. A
// missing or malformed persisted cart is treated as empty, never as an
// error.
func NewStore(client api.Client, st storage.Store, logger *zap.Logger) *Store {
	s := &Store{api: client, storage: st, logger: logger}
	s.restore()
	return s
}

func (s *Store) restore() {
	raw, ok, err := s.storage.Get(storage.CartItemsKey)
	if err != nil {
		s.logger.Warn("failed to read persisted cart", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		// Treated as "no saved cart".
		return
	}
	s.items = items
}

// persist writes the full item slice under the fixed cart key.
// Callers hold s.mu.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to marshal cart items", zap.Error(err))
		return
	}
	if err := s.storage.Set(storage.CartItemsKey, string(raw)); err != nil {
		s.logger.Error("failed to persist cart items", zap.Error(err))
	}
}

// optionsKey canonicalizes selected options for deep-equality
// comparison. Go maps marshal with sorted keys, so equal option maps
// always produce the same key.
func optionsKey(options map[string]any) string {
	if len(options) == 0 {
		return ""
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return fmt.Sprintf("%#v", options)
	}
	return string(raw)
}

// Callers hold s.mu.
func (s *Store) find(serviceID string, options map[string]any) int {
	key := optionsKey(options)
	for i, item := range s.items {
		if item.Service.ID == serviceID && optionsKey(item.SelectedOptions) == key {
			return i
		}
	}
	return -1
}

// AddToCart increments the quantity of the matching line item, or
// appends a new one. Quantities below 1 are treated as 1.
func (s *Store) AddToCart(service models.Service, quantity int, options map[string]any) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(service.ID, options); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, models.CartItem{
			Service:         service,
			Quantity:        quantity,
			SelectedOptions: options,
		})
	}
	s.persist()
}

// RemoveFromCart removes the line item matching (serviceID, options).
func (s *Store) RemoveFromCart(serviceID string, options map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(serviceID, options); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persist()
	}
}

// UpdateQuantity sets the quantity of the matching line item. A
// quantity of zero or below removes the item; a line item never holds
// a non-positive quantity.
func (s *Store) UpdateQuantity(serviceID string, quantity int, options map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(serviceID, options)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	} else {
		s.items[i].Quantity = quantity
	}
	s.persist()
}

// ClearCart empties all line items.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// ToggleCart flips the cart drawer visibility flag.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

// IsOpen reports the cart drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items returns a copy of the current line items.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all line-item quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all line items.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Service.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no line items.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// SyncAfterLogin pushes the local items to the backend, then replaces
// local state with whatever the backend returns: the remote cart is
// authoritative after a sync. Sync is best effort; on any failure the
// local state is left untouched.
func (s *Store) SyncAfterLogin(ctx context.Context) error {
	s.mu.Lock()
	payload := models.CartSyncPayload{Items: make([]models.CartSyncItem, 0, len(s.items))}
	for _, item := range s.items {
		payload.Items = append(payload.Items, models.CartSyncItem{
			ServiceID:       item.Service.ID,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
		})
	}
	s.mu.Unlock()

	if err := s.api.SyncCart(ctx, payload); err != nil {
		s.logger.Error("failed to push cart to backend", zap.Error(err))
		return err
	}

	remote, err := s.api.GetCart(ctx)
	if err != nil {
		s.logger.Error("failed to fetch remote cart", zap.Error(err))
		return err
	}

	items := make([]models.CartItem, 0, len(remote))
	for _, r := range remote {
		items = append(items, models.CartItem{
			Service:         r.Service,
			Quantity:        r.Quantity,
			SelectedOptions: r.SelectedOptions,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.persist()
	return nil
}
