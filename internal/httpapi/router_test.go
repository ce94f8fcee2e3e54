package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidfabkj12/mikombo-front/internal/cartstore"
	"github.com/davidfabkj12/mikombo-front/internal/checkout"
	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/httpapi"
	"github.com/davidfabkj12/mikombo-front/internal/middleware"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

func newRouter(t *testing.T, backend http.HandlerFunc, guard session.Guard) http.Handler {
	t.Helper()
	logger := log.New(io.Discard, "", 0)

	store, err := cartstore.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	c, err := clients.NewClient(srv.URL+"/api", srv.Client(), guard)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	orders := clients.NewOrdersClient(c)
	orch := checkout.NewOrchestrator(store, guard, checkout.NewAPIOrderPlacer(orders), logger)

	return httpapi.NewRouter(
		httpapi.NewCartHandler(store, orch),
		httpapi.NewCatalogHandler(clients.NewCatalogClient(c)),
		httpapi.NewBookingHandler(clients.NewReservationsClient(c), orders, guard),
		httpapi.NewAdminHandler(clients.NewAdminClient(c), guard),
	)
}

func TestRouterHealth(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {}, &guardStub{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.HeaderCorrelationID) == "" {
		t.Fatal("expected correlation id header on every response")
	}
}

func TestRouterEchoesCorrelationID(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {}, &guardStub{})

	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.Header.Set(middleware.HeaderCorrelationID, "cid-7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if got := w.Header().Get(middleware.HeaderCorrelationID); got != "cid-7" {
		t.Fatalf("expected echoed correlation id cid-7, got %q", got)
	}
}

func TestRouterCheckoutEndToEnd(t *testing.T) {
	var upstreamCID string
	backend := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/commandes" {
			t.Fatalf("unexpected upstream path %q", r.URL.Path)
		}
		upstreamCID = r.Header.Get(middleware.HeaderCorrelationID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ord-1"})
	}
	guard := &guardStub{signedIn: true, identity: session.Identity{Subject: "u1"}}
	router := newRouter(t, backend, guard)

	add := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		bytes.NewBufferString(`{"productId":"p1","name":"Tomates","price":"10.00","unit":"kg","quantity":2}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, add)
	if w.Code != http.StatusOK {
		t.Fatalf("add item: expected 200, got %d", w.Code)
	}

	co := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(`{"fulfillmentMode":"pickup"}`))
	co.Header.Set(middleware.HeaderCorrelationID, "cid-co")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, co)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if upstreamCID != "cid-co" {
		t.Fatalf("expected correlation id to reach the boundary, got %q", upstreamCID)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, get)

	view := decodeView(t, w.Body)
	if view.ItemCount != 0 {
		t.Fatalf("expected empty cart after checkout, got itemCount %d", view.ItemCount)
	}
}
