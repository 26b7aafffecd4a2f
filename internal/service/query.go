package service

import (
	"sort"
	"strings"

	"github.com/Irfaaanz/Opto5/internal/models"
)

// SortMode selects the ordering of a product listing.
type SortMode string

const (
	// SortNewest orders by descending product id. Ids are not guaranteed
	// chronological; this mirrors the original listing behavior where the
	// id acts as a recency proxy.
	SortNewest SortMode = "newest"
	// SortBrandAsc orders ascending by brand.
	SortBrandAsc SortMode = "asc"
)

// ParseSortMode maps a query string value to a SortMode, defaulting to newest.
func ParseSortMode(s string) SortMode {
	if SortMode(s) == SortBrandAsc {
		return SortBrandAsc
	}
	return SortNewest
}

// FilterProducts returns a fresh, ordered view of items. The filter is a
// case-insensitive substring match against id or brand; an empty search
// matches everything. Ties keep input order.
func FilterProducts[T models.CatalogItem](items []T, search string, mode SortMode) []T {
	needle := strings.ToLower(search)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.ProductID()), needle) ||
			strings.Contains(strings.ToLower(item.BrandName()), needle) {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if mode == SortBrandAsc {
			return out[i].BrandName() < out[j].BrandName()
		}
		return out[i].ProductID() > out[j].ProductID()
	})
	return out
}
