package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/catalog-manager/internal/repo"
	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// etag fingerprints an encoded body.
func etag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

// writeView renders the current session observation. A GET whose
// If-None-Match matches the rendered view gets 304 Not Modified.
func (s *Server) writeView(w http.ResponseWriter, r *http.Request, status int) {
	out, err := json.Marshal(s.ctrl.View())
	if err != nil {
		s.log.WithError(err).Error("failed to encode view")
		http.Error(w, "failed to encode view", http.StatusInternalServerError)
		return
	}

	tag := etag(out)
	w.Header().Set("ETag", tag)
	if r.Method == http.MethodGet && r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		s.log.WithError(err).Warn("failed to write view")
	}
}

// productID parses the {id} path parameter.
func productID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errors.New("product ID is required")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("invalid product ID")
	}
	return id, nil
}

// statusFor maps session and repository errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrEditorClosed), errors.Is(err, session.ErrNoPendingDelete):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidPage), errors.Is(err, session.ErrInvalidViewMode), errors.Is(err, session.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrControllerClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	http.Error(w, err.Error(), status)
}
