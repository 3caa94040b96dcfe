package httpapi

import (
	"net/http"

	"printaro-be/internal/logger"
	"printaro-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires every endpoint behind the shared middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/health", h.Health)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{slug}/configurator", h.GetConfigurator)
		r.Post("/{slug}/price", h.PriceConfiguration)
	})

	r.Post("/files/validate", h.ValidateFile)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/items", h.ListCartItems)
		r.Post("/items", h.AddCartItem)
		r.Patch("/items/{id}", h.UpdateCartItem)
		r.Delete("/items/{id}", h.RemoveCartItem)
		r.Post("/items/{id}/duplicate", h.DuplicateCartItem)
		r.Delete("/items", h.ClearCart)
		r.Get("/totals", h.CartTotals)
	})

	return r
}
