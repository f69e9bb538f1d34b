package models

// OfferStatus tracks an offer through its lifecycle.
type OfferStatus string

const (
	OfferProposed OfferStatus = "proposed"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Offer is a buyer's bid on a purchase-request listing.
type Offer struct {
	ID        string      `json:"id"`
	ListingID string      `json:"listingId"`
	BuyerID   string      `json:"buyerId"`
	BuyerName string      `json:"buyerName"`
	Price     float64     `json:"price"`
	EtaDays   int         `json:"etaDays"`
	Comment   string      `json:"comment,omitempty"`
	Status    OfferStatus `json:"status"`
	CreatedAt string      `json:"createdAt"`
}

// CreateOfferInput carries the caller-supplied fields of a new offer.
type CreateOfferInput struct {
	ListingID string  `json:"listingId"`
	BuyerID   string  `json:"buyerId"`
	BuyerName string  `json:"buyerName"`
	Price     float64 `json:"price"`
	EtaDays   int     `json:"etaDays"`
	Comment   string  `json:"comment,omitempty"`
}
