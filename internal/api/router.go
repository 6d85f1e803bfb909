package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mp-alertify/backend/internal/middleware"
)

// Router holds all handlers and creates the chi router
type Router struct {
	pagesHandler  *PagesHandler
	reportHandler *ReportHandler
	userHandler   *UserHandler
	healthHandler *HealthHandler
	logger        *zap.Logger
}

// NewRouter creates a new router
func NewRouter(
	pagesHandler *PagesHandler,
	reportHandler *ReportHandler,
	userHandler *UserHandler,
	healthHandler *HealthHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		pagesHandler:  pagesHandler,
		reportHandler: reportHandler,
		userHandler:   userHandler,
		healthHandler: healthHandler,
		logger:        logger,
	}
}

// Setup configures and returns the chi router
func (rt *Router) Setup() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(chimiddleware.Compress(5))

	// Rendered pages
	r.Get("/", rt.pagesHandler.Index)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", rt.pagesHandler.AdminDashboard)
		r.Get("/users", rt.pagesHandler.AdminUsers)
		r.Get("/reports", rt.pagesHandler.AdminReports)
	})

	// Mobile app + admin actions
	r.Post("/register_fcm_token", rt.userHandler.RegisterToken)
	r.Post("/publicize_report", rt.reportHandler.Publicize)
	r.Post("/disable_user", rt.userHandler.Disable)

	r.Get("/health", rt.healthHandler.Health)

	return r
}
