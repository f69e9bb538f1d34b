// Package offers holds the offers store: buyer bids on purchase
// requests, with single-winner acceptance per listing.
package offers

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

// Store owns the offers known to this session.
type Store struct {
	mu     sync.Mutex
	api    api.Client
	clock  utils.Clock
	logger *zap.Logger

	offers  []models.Offer
	loading bool
}

func NewStore(client api.Client, clock utils.Clock, logger *zap.Logger) *Store {
	return &Store{api: client, clock: clock, logger: logger}
}

// LoadOffers fetches the offers for a listing and replaces the local
// set for that listing; offers on other listings are kept.
func (s *Store) LoadOffers(ctx context.Context, listingID string) ([]models.Offer, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	fetched, err := s.api.GetOffers(ctx, listingID)
	if err != nil {
		s.logger.Error("failed to load offers", zap.String("listingId", listingID), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]models.Offer, 0, len(s.offers)+len(fetched))
	kept = append(kept, fetched...)
	for _, offer := range s.offers {
		if offer.ListingID != listingID {
			kept = append(kept, offer)
		}
	}
	s.offers = kept
	return fetched, nil
}

// CreateOffer adds a new proposed offer at the front of the list.
func (s *Store) CreateOffer(input models.CreateOfferInput) models.Offer {
	offer := models.Offer{
		ID:        "offer-" + uuid.NewString(),
		ListingID: input.ListingID,
		BuyerID:   input.BuyerID,
		BuyerName: input.BuyerName,
		Price:     input.Price,
		EtaDays:   input.EtaDays,
		Comment:   input.Comment,
		Status:    models.OfferProposed,
		CreatedAt: s.clock.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = append([]models.Offer{offer}, s.offers...)
	return offer
}

// AcceptOffer accepts one offer on a listing and rejects every other
// offer on the same listing; a listing has at most one accepted offer.
func (s *Store) AcceptOffer(listingID, offerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, offer := range s.offers {
		if offer.ListingID != listingID {
			continue
		}
		if offer.ID == offerID {
			s.offers[i].Status = models.OfferAccepted
		} else {
			s.offers[i].Status = models.OfferRejected
		}
	}
}

// RejectOffer marks a single offer rejected.
func (s *Store) RejectOffer(offerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, offer := range s.offers {
		if offer.ID == offerID {
			s.offers[i].Status = models.OfferRejected
		}
	}
}

// OffersByListing returns all offers on a listing.
func (s *Store) OffersByListing(listingID string) []models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Offer
	for _, offer := range s.offers {
		if offer.ListingID == listingID {
			out = append(out, offer)
		}
	}
	return out
}

// AcceptedOffer returns the accepted offer on a listing, if any.
func (s *Store) AcceptedOffer(listingID string) (models.Offer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, offer := range s.offers {
		if offer.ListingID == listingID && offer.Status == models.OfferAccepted {
			return offer, true
		}
	}
	return models.Offer{}, false
}

// HasOfferFromBuyer reports whether a buyer already has an offer on a
// listing.
func (s *Store) HasOfferFromBuyer(listingID, buyerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, offer := range s.offers {
		if offer.ListingID == listingID && offer.BuyerID == buyerID {
			return true
		}
	}
	return false
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
