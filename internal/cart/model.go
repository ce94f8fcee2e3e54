package cart

import "github.com/shopspring/decimal"

// Line is one product entry in the cart. UnitPrice and Unit are a snapshot of
// the catalog item at the moment it was added; later catalog changes do not
// reach lines already in the cart.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unitLabel"`
	Quantity  int             `json:"quantity"`
}

// State is the ordered sequence of cart lines. At most one line per ProductID,
// insertion order preserved.
type State []Line

// CatalogSnapshot is the catalog item shape consumed when a product enters the
// cart.
type CatalogSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit"`
}
