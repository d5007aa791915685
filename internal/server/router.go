package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the kiosk's HTTP surface.
func NewRouter(cartH *CartHandler, checkoutH *CheckoutHandler, catalogH *CatalogHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{product_id}", cartH.UpdateQuantity)
			r.Delete("/items/{product_id}", cartH.RemoveItem)
			r.Delete("/", cartH.ClearCart)
			r.Put("/customer", cartH.SetCustomer)
		})

		r.Post("/checkout", checkoutH.Submit)
		r.Get("/payment-methods", checkoutH.PaymentMethods)

		r.Get("/products", catalogH.ListProducts)
		r.Get("/products/{product_id}", catalogH.GetProduct)
		r.Get("/categories", catalogH.ListCategories)
	})

	return r
}
