package handlers

import (
	"net/http"
)

// RequestDeleteHandler opens the delete confirmation for product {id}.
func (s *Server) RequestDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.ctrl.RequestDelete(id); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// ConfirmDeleteHandler deletes the product awaiting confirmation.
func (s *Server) ConfirmDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.ConfirmDelete(r.Context()); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// CancelDeleteHandler dismisses the delete confirmation.
func (s *Server) CancelDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.CancelDelete(); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}
