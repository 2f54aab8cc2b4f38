package handlers

import (
	"net/http"
)

// GetViewHandler renders the current page, statistics, editor and delete state.
func (s *Server) GetViewHandler(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, r, http.StatusOK)
}

// SearchHandler records live search text. The filter applies once the
// text settles.
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.Search(req.Text); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// FlushSearchHandler applies the pending search text immediately.
func (s *Server) FlushSearchHandler(w http.ResponseWriter, r *http.Request) {
	s.ctrl.FlushSearch()
	s.writeView(w, r, http.StatusOK)
}

func (s *Server) ChangePageHandler(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.ChangePage(req.Page); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

func (s *Server) ChangeViewModeHandler(w http.ResponseWriter, r *http.Request) {
	var req ViewModeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.ChangeViewMode(req.Mode); err != nil {
		s.fail(w, err)
		return
	}
	s.writeView(w, r, http.StatusOK)
}

// GetNotificationsHandler returns and clears pending notifications.
func (s *Server) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, NotificationsResult{Data: s.ctrl.DrainNotifications()}); err != nil {
		s.log.WithError(err).Warn("failed to write notifications")
	}
}

// GetRecentNotificationsHandler lists the notifications kept by the
// configured sink, newest first.
func (s *Server) GetRecentNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if s.recent == nil {
		http.Error(w, "recent notifications are not enabled", http.StatusNotFound)
		return
	}
	recent, err := s.recent.Recent(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("failed to read recent notifications")
		http.Error(w, "recent notifications unavailable", http.StatusServiceUnavailable)
		return
	}
	if err := writeJSON(w, http.StatusOK, NotificationsResult{Data: recent}); err != nil {
		s.log.WithError(err).Warn("failed to write recent notifications")
	}
}
