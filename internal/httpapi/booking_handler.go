package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

// BookingHandler covers visit reservations and the signed-in visitor's order
// history.
type BookingHandler struct {
	reservations *clients.ReservationsClient
	orders       *clients.OrdersClient
	guard        session.Guard
}

func NewBookingHandler(reservations *clients.ReservationsClient, orders *clients.OrdersClient, guard session.Guard) *BookingHandler {
	return &BookingHandler{reservations: reservations, orders: orders, guard: guard}
}

func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.CurrentIdentity(); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body clients.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.VisitDate) == "" {
		writeError(w, http.StatusUnprocessableEntity, "missing visit date")
		return
	}

	res, err := h.reservations.Create(r.Context(), body)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.CurrentIdentity(); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	out, err := h.reservations.ListMine(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *BookingHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.CurrentIdentity(); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	out, err := h.orders.ListMine(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
