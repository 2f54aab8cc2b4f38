package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/catalog-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/catalog-manager/internal/http/rate_limiter"
)

// NewRouter maps the session events onto routes. limiter may be nil to
// disable rate limiting.
func NewRouter(s *handlers.Server, limiter *rl.Limiter, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter))
	}

	r.Get("/view", s.GetViewHandler)
	r.Get("/stats", s.GetStatsHandler)
	r.Get("/notifications", s.GetNotificationsHandler)
	r.Get("/notifications/recent", s.GetRecentNotificationsHandler)

	r.Post("/search", s.SearchHandler)
	r.Post("/search/flush", s.FlushSearchHandler)
	r.Post("/page", s.ChangePageHandler)
	r.Post("/view-mode", s.ChangeViewModeHandler)

	r.Route("/editor", func(r chi.Router) {
		r.Post("/new", s.OpenAddHandler)
		r.Post("/edit/{id}", s.OpenEditHandler)
		r.Post("/field", s.UpdateFieldHandler)
		r.Post("/submit", s.SubmitHandler)
		r.Post("/close", s.CloseFormHandler)
	})

	r.Route("/delete", func(r chi.Router) {
		r.Post("/confirm", s.ConfirmDeleteHandler)
		r.Post("/cancel", s.CancelDeleteHandler)
		r.Post("/{id}", s.RequestDeleteHandler)
	})

	r.Get("/products/{id}", s.GetProductByIDHandler)
	r.Post("/products/import", s.ImportProductsHandler)
	return r
}
