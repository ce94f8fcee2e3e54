package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidfabkj12/mikombo-front/internal/cart"
)

type OrdersClient struct{ c *Client }

func NewOrdersClient(c *Client) *OrdersClient { return &OrdersClient{c: c} }

// OrderRequest is the payload the order-acceptance boundary expects. Beyond
// the created-order id, the acknowledgment is opaque to this client.
type OrderRequest struct {
	Items           cart.State `json:"items"`
	FulfillmentMode string     `json:"fulfillmentMode"`
	DeliveryAddress string     `json:"deliveryAddress"`
}

type OrderAck struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Order struct {
	ID              string          `json:"id"`
	Items           cart.State      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	FulfillmentMode string          `json:"fulfillmentMode"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (oc *OrdersClient) Create(ctx context.Context, req OrderRequest) (OrderAck, error) {
	var ack OrderAck
	if err := oc.c.do(ctx, http.MethodPost, "/commandes", "", req, &ack); err != nil {
		return OrderAck{}, err
	}
	return ack, nil
}

func (oc *OrdersClient) ListMine(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := oc.c.do(ctx, http.MethodGet, "/commandes/mes-commandes", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
