package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// catalog routes
	router.Group(func(r chi.Router) {
		r.Get("/product", h.getProducts)
		r.Get("/product/name", h.searchProducts)
		r.Get("/product/category/{category}", h.getProductsByCategory)
		r.Get("/product/{id}", h.getProductByID)
	})

	// user routes; the collection and record reads require a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/user", h.getUsers)
		r.Get("/user/{id}", h.getUserByID)
	})
	router.Post("/user/login", h.login)

	// operational routes
	router.Get("/ping", h.ping)
	router.Method("GET", "/metrics", promhttp.Handler())

	return router
}
