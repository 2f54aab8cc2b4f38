package query

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// Stats summarises the whole collection, regardless of any active search.
type Stats struct {
	Count         int             `json:"count"`
	LowStockCount int             `json:"low_stock_count"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ComputeStats aggregates products. A product is low on stock when its
// stock is below threshold.
func ComputeStats(products []models.Product, threshold int) Stats {
	s := Stats{Count: len(products), TotalValue: decimal.Zero}
	for _, p := range products {
		if IsLowStock(p, threshold) {
			s.LowStockCount++
		}
		s.TotalUnits += p.Stock
		s.TotalValue = s.TotalValue.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return s
}

// IsLowStock reports whether p is below the low-stock threshold.
func IsLowStock(p models.Product, threshold int) bool {
	return p.Stock < threshold
}

// FormatPrice renders a price for display with two decimals.
func FormatPrice(price float64) string {
	return "$" + decimal.NewFromFloat(price).StringFixed(2)
}
