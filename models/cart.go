package models

// CartItem is one cart line item. Identity is the pair (service ID,
// selected options compared by deep equality): the same service added
// with different options yields distinct line items.
type CartItem struct {
	Service         Service        `json:"service"`
	Quantity        int            `json:"quantity"`
	SelectedOptions map[string]any `json:"selectedOptions,omitempty"`
}

// CartSyncItem is the wire form of a line item pushed to the backend
// after login.
type CartSyncItem struct {
	ServiceID       string         `json:"serviceId"`
	Quantity        int            `json:"quantity"`
	SelectedOptions map[string]any `json:"selectedOptions,omitempty"`
}

// CartSyncPayload is the body of POST /api/cart/sync.
type CartSyncPayload struct {
	Items []CartSyncItem `json:"items"`
}

// CartResponseItem is one line item as the backend returns it from
// GET /api/cart. The service document comes back denormalized.
type CartResponseItem struct {
	Service         Service        `json:"service"`
	Quantity        int            `json:"quantity"`
	SelectedOptions map[string]any `json:"selectedOptions,omitempty"`
}
