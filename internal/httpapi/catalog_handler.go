package httpapi

import (
	"net/http"

	"github.com/davidfabkj12/mikombo-front/internal/clients"
)

type CatalogHandler struct {
	catalog *clients.CatalogClient
}

func NewCatalogHandler(catalog *clients.CatalogClient) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	animals, err := h.catalog.ListAnimals(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, animals)
}
