package offers

import (
	"context"
	"testing"
	"time"

	"soldy/api"
	"soldy/models"
	"soldy/utils"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clock := utils.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	client := api.NewMock(clock, 1, 0)
	return NewStore(client, clock, zap.NewNop())
}

func TestLoadOffersFetchesListing(t *testing.T) {
	s := newTestStore(t)

	// The seeded dataset carries two offers on service-1.
	offers, err := s.LoadOffers(context.Background(), "service-1")
	if err != nil {
		t.Fatalf("LoadOffers returned error: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers got %d", len(offers))
	}
	if got := s.OffersByListing("service-1"); len(got) != 2 {
		t.Fatalf("expected offers cached in store, got %d", len(got))
	}
}

func TestCreateOfferPrepends(t *testing.T) {
	s := newTestStore(t)

	first := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b1", BuyerName: "One", Price: 100})
	second := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b2", BuyerName: "Two", Price: 200})

	if first.Status != models.OfferProposed || second.Status != models.OfferProposed {
		t.Fatal("expected new offers to start proposed")
	}
	got := s.OffersByListing("l1")
	if len(got) != 2 || got[0].ID != second.ID {
		t.Fatalf("expected newest offer first, got %#v", got)
	}
	if got[0].CreatedAt == "" {
		t.Fatal("expected createdAt set")
	}
}

func TestAcceptOfferRejectsCompetitors(t *testing.T) {
	s := newTestStore(t)
	a := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b1", Price: 100})
	b := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b2", Price: 200})
	other := s.CreateOffer(models.CreateOfferInput{ListingID: "l2", BuyerID: "b3", Price: 300})

	s.AcceptOffer("l1", a.ID)

	accepted, ok := s.AcceptedOffer("l1")
	if !ok || accepted.ID != a.ID {
		t.Fatalf("expected offer %s accepted, got %#v ok=%v", a.ID, accepted, ok)
	}
	for _, offer := range s.OffersByListing("l1") {
		if offer.ID == b.ID && offer.Status != models.OfferRejected {
			t.Fatalf("expected competing offer rejected, got %q", offer.Status)
		}
	}
	// Offers on other listings are untouched.
	for _, offer := range s.OffersByListing("l2") {
		if offer.ID == other.ID && offer.Status != models.OfferProposed {
			t.Fatalf("expected unrelated offer untouched, got %q", offer.Status)
		}
	}
}

func TestAcceptingAnotherOfferDethronesTheFirst(t *testing.T) {
	s := newTestStore(t)
	a := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b1", Price: 100})
	b := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b2", Price: 200})

	s.AcceptOffer("l1", a.ID)
	s.AcceptOffer("l1", b.ID)

	accepted, ok := s.AcceptedOffer("l1")
	if !ok || accepted.ID != b.ID {
		t.Fatalf("expected only %s accepted, got %#v", b.ID, accepted)
	}
}

func TestRejectOffer(t *testing.T) {
	s := newTestStore(t)
	a := s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b1", Price: 100})

	s.RejectOffer(a.ID)

	got := s.OffersByListing("l1")
	if got[0].Status != models.OfferRejected {
		t.Fatalf("expected rejected status, got %q", got[0].Status)
	}
}

func TestHasOfferFromBuyer(t *testing.T) {
	s := newTestStore(t)
	s.CreateOffer(models.CreateOfferInput{ListingID: "l1", BuyerID: "b1", Price: 100})

	if !s.HasOfferFromBuyer("l1", "b1") {
		t.Fatal("expected existing offer detected")
	}
	if s.HasOfferFromBuyer("l1", "b2") {
		t.Fatal("did not expect offer from other buyer")
	}
	if s.HasOfferFromBuyer("l2", "b1") {
		t.Fatal("did not expect offer on other listing")
	}
}
