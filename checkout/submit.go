package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/models"
)

// ErrSubmitInFlight is returned when a submission for the same session
// is already pending. The guard keeps a double-click from placing two
// orders.
var ErrSubmitInFlight = errors.New("checkout: submission already in flight")

// SubmissionError wraps a failed submission. The cart and draft stay
// intact so the caller can resubmit without re-entering anything.
type SubmissionError struct {
	Retryable bool
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("checkout: order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// ItemPayload is one order line as handed to the submitter.
type ItemPayload struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// OrderPayload is the immutable order submission contract.
type OrderPayload struct {
	StoreID       uint                 `json:"store_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	DeliveryType  models.DeliveryType  `json:"delivery_type"`
	Address       *models.Address      `json:"address,omitempty"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CouponCode    string               `json:"coupon_code,omitempty"`
	Items         []ItemPayload        `json:"items"`
	Totals        Totals               `json:"totals"`
}

// Receipt is what a successful submission hands back.
type Receipt struct {
	Numero string             `json:"numero_pedido"`
	Status models.OrderStatus `json:"status"`
}

// Submitter is the external order-submission collaborator.
type Submitter interface {
	SubmitOrder(ctx context.Context, p OrderPayload) (Receipt, error)
}

// BuildPayload assembles the submission payload from a validated draft.
// The address is only attached for delivery orders.
func BuildPayload(d Draft, state cart.State, store *models.Store, coupon *models.Coupon) OrderPayload {
	items := make([]ItemPayload, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, ItemPayload{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
		})
	}
	p := OrderPayload{
		StoreID:       store.ID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		DeliveryType:  d.DeliveryType,
		PaymentMethod: d.PaymentMethod,
		CouponCode:    d.CouponCode,
		Items:         items,
		Totals:        Price(state, store, coupon, d.DeliveryType),
	}
	if d.DeliveryType == models.DeliveryTypeDelivery {
		addr := d.Address
		p.Address = &addr
	}
	return p
}

// Orchestrator drives a cart through validation and submission. One
// submission may be in flight per session at a time.
type Orchestrator struct {
	submitter Submitter

	mu       sync.Mutex
	inflight map[string]bool
}

func NewOrchestrator(s Submitter) *Orchestrator {
	return &Orchestrator{submitter: s, inflight: make(map[string]bool)}
}

func (o *Orchestrator) begin(cartKey string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight[cartKey] {
		return false
	}
	o.inflight[cartKey] = true
	return true
}

func (o *Orchestrator) end(cartKey string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inflight, cartKey)
}

// Submit validates the draft, builds the payload and hands it to the
// submitter. cartKey is the store-scoped key from cart.ScopedKey, so
// only the cart filled on this store's storefront is submitted. The cart is cleared only after the submitter reports
// success; on failure it is left intact and the error is retryable.
// If the caller's context is cancelled while the submission is in
// flight, the request completes, the cart is still cleared, and the
// context error is returned so the caller ignores the receipt.
func (o *Orchestrator) Submit(ctx context.Context, d Draft, sessions *cart.Sessions, cartKey string, store *models.Store, coupon *models.Coupon) (Receipt, error) {
	if !o.begin(cartKey) {
		return Receipt{}, ErrSubmitInFlight
	}
	defer o.end(cartKey)

	state := sessions.Snapshot(cartKey)
	if err := Validate(d, state, store); err != nil {
		return Receipt{}, err
	}

	payload := BuildPayload(d, state, store, coupon)
	receipt, err := o.submitter.SubmitOrder(ctx, payload)
	if err != nil {
		return Receipt{}, &SubmissionError{Retryable: true, Err: err}
	}

	sessions.Dispatch(cartKey, cart.ClearCart{})
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}
