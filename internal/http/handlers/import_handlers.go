package handlers

import (
	"net/http"
)

// ImportProductsHandler adds products from an uploaded CSV file (form
// field "file"). Invalid rows are reported and skipped.
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := s.ctrl.Import(r.Context(), file)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.fail(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		s.log.WithError(err).Warn("failed to write import result")
	}
}
