// Package query derives the visible catalog page and the aggregate
// statistics from a snapshot of the product collection. Everything here is
// a pure function of its arguments.
package query

import (
	"strings"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// Snapshot is everything a derivation depends on.
type Snapshot struct {
	Products          []models.Product
	Search            string
	Page              int
	PageSize          int
	LowStockThreshold int
}

// View is the derived state rendered by the presentation layer.
type View struct {
	Filtered    []models.Product
	Page        []models.Product
	CurrentPage int
	TotalPages  int
	Stats       Stats
}

// Derive computes the filtered list, the requested page and the statistics.
// The page number is used as given; callers reconcile it against TotalPages.
func Derive(s Snapshot) View {
	filtered := FilterByName(s.Products, s.Search)
	return View{
		Filtered:    filtered,
		Page:        Paginate(filtered, s.Page, s.PageSize),
		CurrentPage: s.Page,
		TotalPages:  TotalPages(len(filtered), s.PageSize),
		Stats:       ComputeStats(s.Products, s.LowStockThreshold),
	}
}

// FilterByName keeps the products whose name contains term, ignoring case.
// An empty term matches everything. Order is preserved.
func FilterByName(products []models.Product, term string) []models.Product {
	needle := strings.ToLower(term)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
