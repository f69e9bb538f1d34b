package models

// Request is a user's buy-for-me purchase request.
type Request struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Category    string  `json:"category"`
	Address     string  `json:"address,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	UserID      string  `json:"userId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// CreateRequestInput carries the caller-supplied fields of a new request.
type CreateRequestInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Category    string  `json:"category"`
	Address     string  `json:"address,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	UserID      string  `json:"userId"`
}
