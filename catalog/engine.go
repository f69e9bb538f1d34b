// Package catalog implements the pure filter/sort/paginate pipeline
// over an in-memory listing set. The pipeline never mutates a listing;
// it filters and re-orders references only.
package catalog

import (
	"sort"
	"strings"
	"time"

	"soldy/models"
)

// Query runs the three-stage pipeline over all listings and returns the
// requested page plus pagination metadata. Filters apply conjunctively
// (AND across criteria, OR within multi-valued criteria). Invalid page
// or limit values fall back to the documented defaults; a page past the
// end of the data yields an empty item slice with Total unchanged.
func Query(all []models.Service, q models.CatalogQuery) models.Page {
	filtered := filter(all, q)
	sortListings(filtered, q.SortBy, q.SortOrder)

	page := q.Page
	if page < 1 {
		page = models.DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = models.DefaultLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.Page{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func filter(all []models.Service, q models.CatalogQuery) []models.Service {
	out := make([]models.Service, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, svc := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(svc.Name), search) &&
			!strings.Contains(strings.ToLower(svc.Description), search) {
			continue
		}
		if len(q.Category) > 0 && !contains(q.Category, svc.Category) {
			continue
		}
		if q.MinPrice != nil && svc.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && svc.Price > *q.MaxPrice {
			continue
		}
		out = append(out, svc)
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortListings orders the filtered set in place. An unsupported or
// absent sort key leaves the input order untouched; ties keep their
// relative input order.
func sortListings(listings []models.Service, sortBy, sortOrder string) {
	var key func(models.Service) float64
	switch sortBy {
	case models.SortByPrice:
		key = func(s models.Service) float64 { return s.Price }
	case models.SortByRating:
		key = func(s models.Service) float64 { return s.Rating }
	case models.SortByDate:
		key = func(s models.Service) float64 { return float64(parseCreatedAt(s.CreatedAt)) }
	default:
		return
	}

	desc := sortOrder == models.SortDesc
	sort.SliceStable(listings, func(i, j int) bool {
		if desc {
			return key(listings[i]) > key(listings[j])
		}
		return key(listings[i]) < key(listings[j])
	})
}

func parseCreatedAt(v string) int64 {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
