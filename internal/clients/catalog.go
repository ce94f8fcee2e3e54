package clients

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

// Product is the catalog shape the cart snapshots from. Stock and photos are
// display concerns the engine ignores.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Available   bool            `json:"available"`
}

type Animal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
}

func (cc *CatalogClient) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := cc.c.do(ctx, http.MethodGet, "/produits", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) ListAnimals(ctx context.Context) ([]Animal, error) {
	var out []Animal
	if err := cc.c.do(ctx, http.MethodGet, "/animaux", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
