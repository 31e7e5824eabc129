package router

import (
	"net/http"

	"agrovet-rest-api/internal/handler"
	"agrovet-rest-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler          *handler.Handler
	InventoryHandler *handler.InventoryHandler
	CustomerHandler  *handler.CustomerHandler
	SalesHandler     *handler.SalesHandler
	ReportsHandler   *handler.ReportsHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	r.Get("/api/status", cfg.Handler.Status)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// AUTHENTICATED routes
	r.Group(func(r chi.Router) {
		if cfg.AuthMiddleware != nil {
			r.Use(cfg.AuthMiddleware)
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Post("/refresh", cfg.AuthHandler.Refresh)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", cfg.InventoryHandler.List)
				r.Post("/", cfg.InventoryHandler.Create)
				r.Get("/low-stock", cfg.InventoryHandler.LowStock)
				r.Get("/{id}", cfg.InventoryHandler.Get)
				r.Put("/{id}", cfg.InventoryHandler.Update)
				r.Delete("/{id}", cfg.InventoryHandler.Delete)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", cfg.CustomerHandler.List)
				r.Post("/", cfg.CustomerHandler.Create)
				r.Get("/{id}", cfg.CustomerHandler.Get)
				r.Put("/{id}", cfg.CustomerHandler.Update)
				r.Delete("/{id}", cfg.CustomerHandler.Delete)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", cfg.SalesHandler.List)
				r.Post("/", cfg.SalesHandler.Create)
				r.Get("/{id}", cfg.SalesHandler.Get)
				r.Delete("/{id}", cfg.SalesHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", cfg.ReportsHandler.Summary)
				r.Get("/sales", cfg.ReportsHandler.Sales)
				r.Get("/top-products", cfg.ReportsHandler.TopProducts)
				r.Get("/stock-health", cfg.ReportsHandler.StockHealth)
				r.Get("/export/{report}", cfg.ReportsHandler.Export)
			})
		})
	})

	return r
}
