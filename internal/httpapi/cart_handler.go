package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/davidfabkj12/mikombo-front/internal/cart"
	"github.com/davidfabkj12/mikombo-front/internal/cartstore"
	"github.com/davidfabkj12/mikombo-front/internal/checkout"
)

type CartHandler struct {
	store        *cartstore.Store
	orchestrator *checkout.Orchestrator
}

func NewCartHandler(store *cartstore.Store, orchestrator *checkout.Orchestrator) *CartHandler {
	return &CartHandler{store: store, orchestrator: orchestrator}
}

type cartView struct {
	Lines     cart.State      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func (h *CartHandler) view() cartView {
	lines := h.store.Lines()
	return cartView{Lines: lines, Total: cart.Total(lines), ItemCount: cart.ItemCount(lines)}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string          `json:"productId"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price"`
		Unit      string          `json:"unit"`
		Quantity  int             `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	snap := cart.CatalogSnapshot{ID: body.ProductID, Name: body.Name, Price: body.Price, Unit: body.Unit}
	if err := h.store.Add(snap, body.Quantity); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.store.SetQuantity(productID, body.Quantity); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	if err := h.store.Remove(productID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FulfillmentMode string `json:"fulfillmentMode"`
		DeliveryAddress string `json:"deliveryAddress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	mode := checkout.Mode(body.FulfillmentMode)
	if mode != checkout.ModePickup && mode != checkout.ModeDelivery {
		writeError(w, http.StatusBadRequest, "unknown fulfillment mode")
		return
	}

	res := h.orchestrator.Submit(r.Context(), mode, body.DeliveryAddress)
	// The response is the UI acknowledgment, so the machine rearms here.
	defer h.orchestrator.Acknowledge()

	if res.Status == checkout.StatusSucceeded {
		writeJSON(w, http.StatusCreated, res)
		return
	}
	writeJSON(w, checkoutFailureCode(res.Reason), res)
}

func checkoutFailureCode(reason string) int {
	switch reason {
	case checkout.ReasonUnauthenticated:
		return http.StatusUnauthorized
	case checkout.ReasonEmptyCart, checkout.ReasonSubmitInProgress:
		return http.StatusConflict
	case checkout.ReasonMissingAddress:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
