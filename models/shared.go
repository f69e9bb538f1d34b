package models

// Sort keys accepted by the catalog query contract.
const (
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByDate   = "date"
)

// Sort directions. Ascending is the default when none is supplied.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Catalog types distinguish buyer-offered services from user purchase
// requests. Both flow through the same query pipeline.
const (
	CatalogTypeServices = "services"
	CatalogTypeRequests = "requests"
)

// Pagination defaults applied when the caller omits or supplies
// invalid page/limit values.
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// CatalogQuery is the full query-parameter contract into the catalog
// pipeline. All fields are optional; zero values mean "not supplied".
type CatalogQuery struct {
	Page        int      `json:"page,omitempty"`
	Limit       int      `json:"limit,omitempty"`
	Search      string   `json:"search,omitempty"`
	Category    []string `json:"category,omitempty"`
	Brand       []string `json:"brand,omitempty"`
	Subcategory []string `json:"subcategory,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	SortBy      string   `json:"sortBy,omitempty"`
	SortOrder   string   `json:"sortOrder,omitempty"`
	BuyerID     string   `json:"buyerId,omitempty"`
	CatalogType string   `json:"catalogType,omitempty"`
}

// Page is one page of catalog results plus pagination metadata.
// Total is the post-filter, pre-pagination match count.
type Page struct {
	Items      []Service `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

// CatalogFilter is the store-side filter state merged into each query.
type CatalogFilter struct {
	Search      string   `json:"search,omitempty"`
	Category    []string `json:"category,omitempty"`
	Brand       []string `json:"brand,omitempty"`
	Subcategory []string `json:"subcategory,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	SortBy      string   `json:"sortBy,omitempty"`
	SortOrder   string   `json:"sortOrder,omitempty"`
	BuyerID     string   `json:"buyerId,omitempty"`
}

// Pagination is the metadata slice of a Page, tracked by the catalog
// store between loads.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PriceRange is cached facet data for the price filter controls.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// APIResponse is the wire envelope every backend endpoint wraps its
// payload in.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}
