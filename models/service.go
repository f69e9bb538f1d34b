package models

// Service is a catalog listing: either a buyer-offered proxy-purchasing
// service or a user's purchase request, depending on catalog type.
// Listings are immutable once fetched; the catalog engine only filters
// and re-orders references to them.
type Service struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Images      []string      `json:"images"`
	CustomFields []CustomField `json:"customFields"`
	BuyerID     string        `json:"buyerId"`
	Rating      float64       `json:"rating"`
	ReviewCount int           `json:"reviewCount"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

// CustomField is a per-listing option the buyer can configure when
// ordering (size, color, etc).
type CustomField struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"` // "text", "number", "select" or "checkbox"
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Value    any      `json:"value,omitempty"`
}
