package clients

import (
	"context"
	"net/http"
	"net/url"
)

// AdminClient drives the staff-only status updates. Whether a transition is
// legal stays with the server; this client only proposes it.
type AdminClient struct{ c *Client }

func NewAdminClient(c *Client) *AdminClient { return &AdminClient{c: c} }

func (ac *AdminClient) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	q := url.Values{"statut": {status}}
	return ac.c.do(ctx, http.MethodPut, "/admin/commandes/"+orderID+"/statut", q.Encode(), nil, nil)
}

func (ac *AdminClient) UpdateReservationStatus(ctx context.Context, reservationID, status string) error {
	q := url.Values{"statut": {status}}
	return ac.c.do(ctx, http.MethodPut, "/admin/reservations/"+reservationID+"/statut", q.Encode(), nil, nil)
}

func (ac *AdminClient) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := ac.c.do(ctx, http.MethodGet, "/admin/commandes", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ac *AdminClient) ListReservations(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	if err := ac.c.do(ctx, http.MethodGet, "/admin/reservations", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
