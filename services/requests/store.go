// Package requests holds the purchase-request store.
package requests

import (
	"context"
	"sync"
	"time"

	"soldy/api"
	"soldy/models"
	"soldy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns the purchase requests known to this session.
type Store struct {
	mu     sync.Mutex
	api    api.Client
	clock  utils.Clock
	logger *zap.Logger

	requests []models.Request
	loading  bool
}

func NewStore(client api.Client, clock utils.Clock, logger *zap.Logger) *Store {
	return &Store{api: client, clock: clock, logger: logger}
}

// LoadRequests fetches the request list and replaces local state.
func (s *Store) LoadRequests(ctx context.Context) ([]models.Request, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	fetched, err := s.api.GetRequests(ctx)
	if err != nil {
		s.logger.Error("failed to load requests", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = fetched
	return fetched, nil
}

// GetRequestByID returns the request with the given id, if known.
func (s *Store) GetRequestByID(id string) (models.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.requests {
		if req.ID == id {
			return req, true
		}
	}
	return models.Request{}, false
}

// CreateRequest adds a new request at the front of the list.
func (s *Store) CreateRequest(input models.CreateRequestInput) models.Request {
	req := models.Request{
		ID:          "request-" + uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Category:    input.Category,
		Address:     input.Address,
		Deadline:    input.Deadline,
		UserID:      input.UserID,
		CreatedAt:   s.clock.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append([]models.Request{req}, s.requests...)
	return req
}

// Requests returns a copy of the current request list.
func (s *Store) Requests() []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// IsLoading reports whether a load is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
