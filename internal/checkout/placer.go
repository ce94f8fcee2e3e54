package checkout

import (
	"context"

	"github.com/davidfabkj12/mikombo-front/internal/clients"
)

// APIOrderPlacer submits checkout requests through the orders client.
type APIOrderPlacer struct {
	orders *clients.OrdersClient
}

func NewAPIOrderPlacer(orders *clients.OrdersClient) *APIOrderPlacer {
	return &APIOrderPlacer{orders: orders}
}

func (p *APIOrderPlacer) PlaceOrder(ctx context.Context, req Request) (string, error) {
	ack, err := p.orders.Create(ctx, clients.OrderRequest{
		Items:           req.Items,
		FulfillmentMode: string(req.FulfillmentMode),
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		return "", err
	}
	return ack.ID, nil
}
