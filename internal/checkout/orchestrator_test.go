package checkout_test

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidfabkj12/mikombo-front/internal/cart"
	"github.com/davidfabkj12/mikombo-front/internal/cartstore"
	"github.com/davidfabkj12/mikombo-front/internal/checkout"
	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

type guardStub struct {
	identity session.Identity
	signedIn bool
}

func (g *guardStub) CurrentIdentity() (session.Identity, bool) { return g.identity, g.signedIn }
func (g *guardStub) AuthHeader() string {
	if g.signedIn {
		return "Bearer stub"
	}
	return ""
}

type placerStub struct {
	mu       sync.Mutex
	calls    []checkout.Request
	orderID  string
	err      error
	started  chan struct{}
	proceed  chan struct{}
}

func (p *placerStub) PlaceOrder(ctx context.Context, req checkout.Request) (string, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.mu.Unlock()
	if p.started != nil {
		close(p.started)
	}
	if p.proceed != nil {
		<-p.proceed
	}
	return p.orderID, p.err
}

func (p *placerStub) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func newStore(t *testing.T) *cartstore.Store {
	t.Helper()
	s, err := cartstore.Open(t.TempDir(), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return s
}

func fillCart(t *testing.T, s *cartstore.Store) {
	t.Helper()
	require.NoError(t, s.Add(cart.CatalogSnapshot{
		ID:    "p1",
		Name:  "Tomates",
		Price: decimal.RequireFromString("10.00"),
		Unit:  "kg",
	}, 2))
}

func newOrchestrator(store *cartstore.Store, guard session.Guard, placer checkout.OrderPlacer) *checkout.Orchestrator {
	return checkout.NewOrchestrator(store, guard, placer, log.New(io.Discard, "", 0))
}

func TestSubmitSucceedsAndClearsCart(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{orderID: "ord-1"}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")

	assert.Equal(t, checkout.StatusSucceeded, res.Status)
	assert.Equal(t, "ord-1", res.OrderID)
	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, cart.ItemCount(store.Lines()))
	assert.Equal(t, 1, placer.callCount())
}

func TestSubmitBoundaryFailureLeavesCartUntouched(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	before := store.Lines()
	placer := &placerStub{err: errors.New("connection refused")}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")

	assert.Equal(t, checkout.StatusFailed, res.Status)
	assert.Equal(t, checkout.ReasonSubmissionFailed, res.Reason)
	assert.Equal(t, before, store.Lines())
}

func TestSubmitSurfacesBoundaryDetail(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{err: &clients.APIError{Status: 409, Detail: "stock insuffisant"}}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")

	assert.Equal(t, checkout.StatusFailed, res.Status)
	assert.Equal(t, "stock insuffisant", res.Reason)
}

func TestSubmitUnauthenticated(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{}
	o := newOrchestrator(store, &guardStub{signedIn: false}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")

	assert.Equal(t, checkout.StatusFailed, res.Status)
	assert.Equal(t, checkout.ReasonUnauthenticated, res.Reason)
	assert.Equal(t, 0, placer.callCount(), "no network call on precondition failure")
	assert.Len(t, store.Lines(), 1)
}

func TestSubmitEmptyCart(t *testing.T) {
	store := newStore(t)
	placer := &placerStub{}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")

	assert.Equal(t, checkout.StatusFailed, res.Status)
	assert.Equal(t, checkout.ReasonEmptyCart, res.Reason)
	assert.Equal(t, 0, placer.callCount())
}

func TestSubmitDeliveryRequiresAddress(t *testing.T) {
	for _, address := range []string{"", "   ", "\t\n"} {
		store := newStore(t)
		fillCart(t, store)
		placer := &placerStub{}
		o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

		res := o.Submit(context.Background(), checkout.ModeDelivery, address)

		assert.Equal(t, checkout.StatusFailed, res.Status)
		assert.Equal(t, checkout.ReasonMissingAddress, res.Reason)
		assert.Equal(t, 0, placer.callCount(), "address %q must fail before any network call", address)
		assert.Len(t, store.Lines(), 1)
	}
}

func TestSubmitPickupBlanksDeliveryAddress(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{orderID: "ord-2"}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "12 rue du Parc")

	require.Equal(t, checkout.StatusSucceeded, res.Status)
	require.Equal(t, 1, placer.callCount())
	assert.Empty(t, placer.calls[0].DeliveryAddress)
}

func TestSubmitDeliveryCarriesAddressAndSnapshot(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{orderID: "ord-3"}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModeDelivery, "12 rue du Parc")

	require.Equal(t, checkout.StatusSucceeded, res.Status)
	require.Equal(t, 1, placer.callCount())
	req := placer.calls[0]
	assert.Equal(t, checkout.ModeDelivery, req.FulfillmentMode)
	assert.Equal(t, "12 rue du Parc", req.DeliveryAddress)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "p1", req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestSubmitRefusedWhileInFlight(t *testing.T) {
	store := newStore(t)
	fillCart(t, store)
	placer := &placerStub{
		orderID: "ord-4",
		started: make(chan struct{}),
		proceed: make(chan struct{}),
	}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	done := make(chan checkout.Result, 1)
	go func() {
		done <- o.Submit(context.Background(), checkout.ModePickup, "")
	}()

	select {
	case <-placer.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the boundary")
	}

	second := o.Submit(context.Background(), checkout.ModePickup, "")
	assert.Equal(t, checkout.StatusFailed, second.Status)
	assert.Equal(t, checkout.ReasonSubmitInProgress, second.Reason)
	assert.Equal(t, 1, placer.callCount(), "overlapping submit must not reach the boundary")

	close(placer.proceed)
	select {
	case first := <-done:
		assert.Equal(t, checkout.StatusSucceeded, first.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never finished")
	}
}

func TestTerminalStateDoesNotLockStore(t *testing.T) {
	store := newStore(t)
	placer := &placerStub{}
	o := newOrchestrator(store, &guardStub{signedIn: true}, placer)

	res := o.Submit(context.Background(), checkout.ModePickup, "")
	require.Equal(t, checkout.StatusFailed, res.Status)

	// mutations stay available regardless of orchestrator state
	fillCart(t, store)
	assert.Len(t, store.Lines(), 1)

	o.Acknowledge()
	assert.Equal(t, checkout.StatusIdle, o.Status())

	res = o.Submit(context.Background(), checkout.ModePickup, "")
	assert.Equal(t, checkout.StatusSucceeded, res.Status)
}

func TestAcknowledgeOnlyLeavesTerminalStates(t *testing.T) {
	store := newStore(t)
	o := newOrchestrator(store, &guardStub{signedIn: true}, &placerStub{})

	o.Acknowledge()
	assert.Equal(t, checkout.StatusIdle, o.Status())
}
