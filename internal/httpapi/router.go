package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/davidfabkj12/mikombo-front/internal/middleware"
)

func NewRouter(cartH *CartHandler, catalogH *CatalogHandler, bookingH *BookingHandler, adminH *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CorrelationID)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Delete("/", cartH.ClearCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{productId}", cartH.UpdateItem)
			r.Delete("/items/{productId}", cartH.RemoveItem)
		})
		r.Post("/checkout", cartH.Checkout)

		r.Get("/produits", catalogH.ListProducts)
		r.Get("/animaux", catalogH.ListAnimals)

		r.Post("/reservations", bookingH.CreateReservation)
		r.Get("/reservations", bookingH.ListReservations)
		r.Get("/commandes", bookingH.ListOrders)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/commandes", adminH.ListOrders)
			r.Get("/reservations", adminH.ListReservations)
			r.Put("/commandes/{id}/statut", adminH.UpdateOrderStatus)
			r.Put("/reservations/{id}/statut", adminH.UpdateReservationStatus)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "mikombo-front"})
}
