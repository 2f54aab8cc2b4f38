package query

import "github.com/rogerio-castellano/catalog-manager/internal/models"

// TotalPages returns ceil(count/pageSize), never less than 1.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of products. A page outside the
// available range yields an empty slice. A non-positive pageSize disables
// pagination.
func Paginate(products []models.Product, page, pageSize int) []models.Product {
	if pageSize <= 0 {
		return products
	}
	if page < 1 {
		return []models.Product{}
	}

	start := clamp((page-1)*pageSize, 0, len(products))
	end := clamp(start+pageSize, start, len(products))
	return products[start:end]
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	return clamp(page, 1, max(totalPages, 1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
