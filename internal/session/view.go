package session

import (
	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/query"
)

// ProductView is a product as rendered on a page.
type ProductView struct {
	models.Product
	LowStock     bool   `json:"low_stock"`
	PriceDisplay string `json:"price_display"`
}

// DeleteView is the observable state of the delete confirmation.
type DeleteView struct {
	Open        bool   `json:"open"`
	ProductID   int    `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
}

// Observation is everything the presentation layer renders. Notifications
// lists the queued notifications without draining them.
type Observation struct {
	Products        []ProductView `json:"products"`
	CurrentPage     int           `json:"current_page"`
	TotalPages      int           `json:"total_pages"`
	PageSize        int           `json:"page_size"`
	FilteredCount   int           `json:"filtered_count"`
	Stats           query.Stats   `json:"stats"`
	SearchTerm      string        `json:"search_term"`
	DebouncedSearch string        `json:"debounced_search"`
	SearchPending   bool          `json:"search_pending"`
	ViewMode        ViewMode      `json:"view_mode"`
	Editor          EditorView    `json:"editor"`
	Delete          DeleteView    `json:"delete"`

	Notifications []models.Notification `json:"notifications"`
}

// View derives the current observation from a consistent snapshot of the
// repository and the query state.
func (c *Controller) View() Observation {
	pending := c.search.Pending()

	c.mu.Lock()
	defer c.mu.Unlock()

	v := query.Derive(query.Snapshot{
		Products:          c.store.GetAll(),
		Search:            c.debouncedSearch,
		Page:              c.currentPage,
		PageSize:          c.cfg.PageSize,
		LowStockThreshold: c.cfg.LowStockThreshold,
	})

	products := make([]ProductView, len(v.Page))
	for i, p := range v.Page {
		products[i] = ProductView{
			Product:      p,
			LowStock:     query.IsLowStock(p, c.cfg.LowStockThreshold),
			PriceDisplay: query.FormatPrice(p.Price),
		}
	}

	obs := Observation{
		Products:        products,
		CurrentPage:     v.CurrentPage,
		TotalPages:      v.TotalPages,
		PageSize:        c.cfg.PageSize,
		FilteredCount:   len(v.Filtered),
		Stats:           v.Stats,
		SearchTerm:      c.searchTerm,
		DebouncedSearch: c.debouncedSearch,
		SearchPending:   pending,
		ViewMode:        c.viewMode,
		Editor:          c.editor.view(),
		Notifications:   append([]models.Notification{}, c.notifications...),
	}
	if pd := c.pendingDelete; pd != nil {
		obs.Delete = DeleteView{Open: true, ProductID: pd.productID, ProductName: pd.productName}
	}
	return obs
}

// IsLowStock reports whether p is below the session's low-stock threshold.
func (c *Controller) IsLowStock(p models.Product) bool {
	return query.IsLowStock(p, c.cfg.LowStockThreshold)
}
