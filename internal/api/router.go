package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fleetsight/fleetsight/internal/analytics"
	"github.com/fleetsight/fleetsight/internal/auth"
	"github.com/fleetsight/fleetsight/internal/config"
	"github.com/fleetsight/fleetsight/internal/store"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	dataset *analytics.Dataset,
	st store.Store,
	authSvc *auth.Service,
	cfg config.AuthConfig,
) http.Handler {
	h := &Handlers{
		dataset: dataset,
		store:   st,
		auth:    authSvc,
	}
	logins := newLoginLimiter(cfg.LoginRate, cfg.LoginBurst)

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Public.
		r.Post("/auth/signup", h.Signup)
		r.With(logins.Limit).Post("/auth/login", h.Login)

		// Authenticated.
		r.Group(func(r chi.Router) {
			r.Use(Authenticate(authSvc))

			r.Get("/dashboard", h.Dashboard)
			r.Get("/trip-stats", h.TripStats)
			r.Get("/financial-dashboard", h.FinancialOverview)

			r.Get("/trips", h.ListTrips)
			r.Get("/trips/ongoing", h.ListOngoingTrips)
			r.Get("/trips/closure", h.ListClosureTrips)
			r.Get("/trips/audit", h.ListAuditTrips)

			r.Get("/filters", h.FilterOptions)
			r.Get("/report", h.Report)
			r.Get("/report/download", h.ReportDownload)
		})
	})

	return r
}
