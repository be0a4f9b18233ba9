package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/paisa/internal/adapter/http/handler"
	"github.com/iho/paisa/internal/adapter/http/middleware"
	"github.com/iho/paisa/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	ReportHandler      *handler.ReportHandler
	AdvisoryHandler    *handler.AdvisoryHandler
	ProfileHandler     *handler.ProfileHandler
	HealthHandler      *handler.HealthHandler

	Logger  zerolog.Logger
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	// AdvisoryLimiter throttles the insights and tips endpoints when set.
	AdvisoryLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.TransactionHandler.List)
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/{id}", cfg.TransactionHandler.Get)
			r.Put("/{id}", cfg.TransactionHandler.Update)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Read models
		r.Get("/dashboard", cfg.ReportHandler.Dashboard)
		r.Get("/history", cfg.ReportHandler.History)
		r.Get("/reports", cfg.ReportHandler.Reports)
		r.Get("/reports/print", cfg.ReportHandler.Print)
		r.Get("/categories", cfg.ReportHandler.Categories)

		// Advisory
		r.Group(func(r chi.Router) {
			if cfg.AdvisoryLimiter != nil {
				r.Use(cfg.AdvisoryLimiter.Limit)
			}
			r.Get("/insights", cfg.AdvisoryHandler.Insights)
			r.Get("/tips", cfg.AdvisoryHandler.Tips)
		})

		// Profile and settings
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", cfg.ProfileHandler.Get)
			r.Post("/", cfg.ProfileHandler.Onboard)
			r.Delete("/", cfg.ProfileHandler.SignOut)
			r.Put("/language", cfg.ProfileHandler.ChangeLanguage)
		})
		r.Get("/settings/theme", cfg.ProfileHandler.GetTheme)
		r.Put("/settings/theme", cfg.ProfileHandler.SetTheme)
	})

	return r
}
