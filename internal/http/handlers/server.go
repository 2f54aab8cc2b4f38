package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

// RecentNotifications lists the notifications a sink has kept, newest first.
type RecentNotifications interface {
	Recent(ctx context.Context) ([]models.Notification, error)
}

// Server exposes a catalog session over HTTP.
type Server struct {
	ctrl   *session.Controller
	log    logrus.FieldLogger
	recent RecentNotifications
}

type ServerOption func(*Server)

// WithRecentNotifications serves src on GET /notifications/recent.
func WithRecentNotifications(src RecentNotifications) ServerOption {
	return func(s *Server) { s.recent = src }
}

func NewServer(ctrl *session.Controller, log logrus.FieldLogger, opts ...ServerOption) *Server {
	s := &Server{ctrl: ctrl, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
