package handlers

import (
	"net/http"
)

// OpenAddHandler opens an empty product editor.
func (s *Server) OpenAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.OpenAdd(); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// OpenEditHandler opens the editor pre-filled with product {id}.
func (s *Server) OpenEditHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.ctrl.OpenEdit(id); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// UpdateFieldHandler changes one editor field and re-validates it.
func (s *Server) UpdateFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req FieldRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.UpdateField(req.Field, req.Value); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// SubmitHandler validates and commits the editor payload. A rejected
// payload answers 422 with the field errors.
func (s *Server) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	res, err := s.ctrl.Submit(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}

	status := http.StatusOK
	if len(res.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	resp := SubmitResponse{
		Accepted: res.Accepted,
		Product:  res.Product,
		Errors:   res.Errors,
		View:     s.ctrl.View(),
	}
	if err := writeJSON(w, status, resp); err != nil {
		s.log.WithError(err).Warn("failed to write submit response")
	}
}

// CloseFormHandler closes the editor, discarding unsaved values.
func (s *Server) CloseFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.CloseForm(); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}
