package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/davidfabkj12/mikombo-front/internal/cart"
	"github.com/davidfabkj12/mikombo-front/internal/cartstore"
	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Failure reasons surfaced to the caller. Precondition reasons are decided
// locally before any network call; submission-failed is the generic fallback
// when the boundary reports nothing usable.
const (
	ReasonUnauthenticated  = "unauthenticated"
	ReasonEmptyCart        = "empty-cart"
	ReasonMissingAddress   = "missing-address"
	ReasonSubmitInProgress = "submission-in-progress"
	ReasonSubmissionFailed = "submission-failed"
)

type Mode string

const (
	ModePickup   Mode = "pickup"
	ModeDelivery Mode = "delivery"
)

// Request is the one-shot payload handed to the order-acceptance boundary.
// It is built from a snapshot of the cart and discarded when the attempt
// resolves.
type Request struct {
	Items           cart.State
	FulfillmentMode Mode
	DeliveryAddress string
}

// OrderPlacer is the order-acceptance boundary. It is invoked exactly once
// per submit; the returned id is the only part of the acknowledgment the
// orchestrator looks at.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req Request) (orderID string, err error)
}

type Result struct {
	Status  Status `json:"status"`
	Reason  string `json:"reason,omitempty"`
	OrderID string `json:"orderId,omitempty"`
}

// Orchestrator runs the submit workflow: validate preconditions, call the
// boundary, and clear the cart only after the boundary confirmed the order.
// The cart is never mutated on any failure path, so a failed submit is
// retryable as-is.
type Orchestrator struct {
	store  *cartstore.Store
	guard  session.Guard
	placer OrderPlacer
	logger *log.Logger

	mu     sync.Mutex
	status Status
}

func NewOrchestrator(store *cartstore.Store, guard session.Guard, placer OrderPlacer, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		store:  store,
		guard:  guard,
		placer: placer,
		logger: logger,
		status: StatusIdle,
	}
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Acknowledge returns a terminal state to idle. Cart mutations are never
// blocked by the orchestrator's state; this only rearms the submit workflow.
func (o *Orchestrator) Acknowledge() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSucceeded || o.status == StatusFailed {
		o.status = StatusIdle
	}
}

// Submit runs one checkout attempt. There is no idempotency key on the
// boundary, so only one attempt may be in flight: overlapping calls are
// refused without touching the cart or the network.
func (o *Orchestrator) Submit(ctx context.Context, mode Mode, deliveryAddress string) Result {
	o.mu.Lock()
	if o.status == StatusSubmitting {
		o.mu.Unlock()
		return Result{Status: StatusFailed, Reason: ReasonSubmitInProgress}
	}
	o.status = StatusValidating

	if _, ok := o.guard.CurrentIdentity(); !ok {
		return o.fail(ReasonUnauthenticated)
	}

	lines := o.store.Lines()
	if len(lines) == 0 {
		return o.fail(ReasonEmptyCart)
	}

	if mode == ModeDelivery && strings.TrimSpace(deliveryAddress) == "" {
		return o.fail(ReasonMissingAddress)
	}
	if mode != ModeDelivery {
		deliveryAddress = ""
	}

	req := Request{
		Items:           lines,
		FulfillmentMode: mode,
		DeliveryAddress: deliveryAddress,
	}
	o.status = StatusSubmitting
	o.mu.Unlock()

	orderID, err := o.placer.PlaceOrder(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.status = StatusFailed
		o.logger.Printf("order submission failed: %v", err)
		return Result{Status: StatusFailed, Reason: boundaryReason(err)}
	}

	if err := o.store.Clear(); err != nil {
		// The order exists; an unwritable cart file must not turn success
		// into failure. The stale cart surfaces again on next hydrate.
		o.logger.Printf("clear cart after checkout: %v", err)
	}
	o.status = StatusSucceeded
	return Result{Status: StatusSucceeded, OrderID: orderID}
}

// fail is called with o.mu held and releases it.
func (o *Orchestrator) fail(reason string) Result {
	o.status = StatusFailed
	o.mu.Unlock()
	return Result{Status: StatusFailed, Reason: reason}
}

func boundaryReason(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return ReasonSubmissionFailed
}
