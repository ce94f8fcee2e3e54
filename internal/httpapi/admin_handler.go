package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

// AdminHandler gates staff status updates on the session's role claim before
// proposing them upstream. The server still decides whether the transition is
// legal.
type AdminHandler struct {
	admin *clients.AdminClient
	guard session.Guard
}

func NewAdminHandler(admin *clients.AdminClient, guard session.Guard) *AdminHandler {
	return &AdminHandler{admin: admin, guard: guard}
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter) bool {
	id, ok := h.guard.CurrentIdentity()
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if !id.IsAdmin() {
		writeError(w, http.StatusForbidden, "admin role required")
		return false
	}
	return true
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}

	status := r.URL.Query().Get("statut")
	if status == "" {
		writeError(w, http.StatusBadRequest, "missing statut")
		return
	}

	if err := h.admin.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}

	status := r.URL.Query().Get("statut")
	if status == "" {
		writeError(w, http.StatusBadRequest, "missing statut")
		return
	}

	if err := h.admin.UpdateReservationStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}

	out, err := h.admin.ListOrders(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}

	out, err := h.admin.ListReservations(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
