package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/catalog-manager/internal/query"
	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

// GetProductByIDHandler returns a single product.
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := s.ctrl.Product(id)
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := session.ProductView{
		Product:      product,
		LowStock:     s.ctrl.IsLowStock(product),
		PriceDisplay: query.FormatPrice(product.Price),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.log.WithError(err).Warn("failed to write product")
	}
}

// GetStatsHandler returns the statistics of the whole catalog.
func (s *Server) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, s.ctrl.View().Stats); err != nil {
		s.log.WithError(err).Warn("failed to write stats")
	}
}
