package domain

import (
	"sort"
	"strings"
	"time"
)

// Product is a catalog entry as served by the BiteSwift API. Products are
// read-only from this side; prices are integer minor units.
type Product struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Stock       int64     `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sort options understood by the catalog pipeline. Anything else falls
// through to the default newest-first ordering.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CatalogQuery narrows and orders the product list.
type CatalogQuery struct {
	Search   string
	Category string
	Sort     string
}

// FilterProducts projects products through search, category and sort, in that
// fixed order. The search term matches name or description as a
// case-insensitive substring; the category must match exactly, ignoring case.
// Sorts are stable and the input slice is never mutated.
func FilterProducts(products []Product, q CatalogQuery) []Product {
	out := make([]Product, 0, len(products))

	term := strings.ToLower(q.Search)
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out
}

// Categories returns the distinct product categories in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
