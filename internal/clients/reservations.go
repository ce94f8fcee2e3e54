package clients

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type ReservationsClient struct{ c *Client }

func NewReservationsClient(c *Client) *ReservationsClient { return &ReservationsClient{c: c} }

type ReservationRequest struct {
	VisitType string `json:"visitType"`
	VisitDate string `json:"visitDate"`
	VisitTime string `json:"visitTime"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
}

type Reservation struct {
	ID        string          `json:"id"`
	VisitType string          `json:"visitType"`
	VisitDate string          `json:"visitDate"`
	VisitTime string          `json:"visitTime"`
	Adults    int             `json:"adults"`
	Children  int             `json:"children"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
}

func (rc *ReservationsClient) Create(ctx context.Context, req ReservationRequest) (Reservation, error) {
	var out Reservation
	if err := rc.c.do(ctx, http.MethodPost, "/reservations", "", req, &out); err != nil {
		return Reservation{}, err
	}
	return out, nil
}

func (rc *ReservationsClient) ListMine(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	if err := rc.c.do(ctx, http.MethodGet, "/reservations/mes-reservations", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
