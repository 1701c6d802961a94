package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/models"
)

// fakeSubmitter counts calls and can block until released, to hold a
// submission in flight.
type fakeSubmitter struct {
	calls   atomic.Int64
	fail    error
	release chan struct{}
	last    OrderPayload
	mu      sync.Mutex
}

func (f *fakeSubmitter) SubmitOrder(ctx context.Context, p OrderPayload) (Receipt, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.last = p
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	if f.fail != nil {
		return Receipt{}, f.fail
	}
	return Receipt{Numero: "20250901120000-AB12CD34", Status: models.OrderStatusPending}, nil
}

func sessionWithCart(t *testing.T) (*cart.Sessions, string) {
	t.Helper()
	sessions := cart.NewSessions(time.Hour)
	p := &models.Product{ID: 1, StoreID: 1, Name: "burger", Price: dec("25.90"), Available: true}
	li, err := cart.NewLineItem(p, 1, 2, "")
	require.NoError(t, err)
	key := cart.ScopedKey("sess", 1)
	sessions.Dispatch(key, cart.AddItem{Item: li})
	return sessions, key
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	sessions, id := sessionWithCart(t)
	sub := &fakeSubmitter{}
	orch := NewOrchestrator(sub)

	receipt, err := orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
	require.NoError(t, err)
	assert.Equal(t, "20250901120000-AB12CD34", receipt.Numero)
	assert.Equal(t, int64(1), sub.calls.Load())
	assert.Empty(t, sessions.Snapshot(id).Items, "cart cleared after success")
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	sessions, id := sessionWithCart(t)
	sub := &fakeSubmitter{fail: errors.New("service unreachable")}
	orch := NewOrchestrator(sub)

	_, err := orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
	var sErr *SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.True(t, sErr.Retryable)
	assert.Len(t, sessions.Snapshot(id).Items, 1, "cart survives a failed submission")

	// The same orchestrator accepts a retry once the first attempt ended.
	sub.fail = nil
	_, err = orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sub.calls.Load())
}

func TestSubmitValidationSkipsSubmitter(t *testing.T) {
	sessions, id := sessionWithCart(t)
	sub := &fakeSubmitter{}
	orch := NewOrchestrator(sub)

	draft := validDraft()
	draft.CustomerName = ""
	_, err := orch.Submit(context.Background(), draft, sessions, id, openStore(), nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, int64(0), sub.calls.Load())
	assert.Len(t, sessions.Snapshot(id).Items, 1)
}

// Two rapid submits for the same session must reach the submitter once.
func TestSubmitDoubleClickIsRejected(t *testing.T) {
	sessions, id := sessionWithCart(t)
	sub := &fakeSubmitter{release: make(chan struct{})}
	orch := NewOrchestrator(sub)

	firstDone := make(chan error, 1)
	go func() {
		_, err := orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
		firstDone <- err
	}()

	// Wait for the first submission to be in flight.
	for sub.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	_, err := orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(sub.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, int64(1), sub.calls.Load())
}

func TestSubmitOtherSessionsNotBlocked(t *testing.T) {
	sessions, id := sessionWithCart(t)
	other := cart.NewSessions(time.Hour)
	p := &models.Product{ID: 2, StoreID: 1, Name: "fries", Price: dec("9.00"), Available: true}
	li, err := cart.NewLineItem(p, 1, 1, "")
	require.NoError(t, err)
	other.Dispatch(cart.ScopedKey("sess2", 1), cart.AddItem{Item: li})

	blocked := &fakeSubmitter{release: make(chan struct{})}
	orch := NewOrchestrator(blocked)

	done := make(chan error, 1)
	go func() {
		_, err := orch.Submit(context.Background(), validDraft(), sessions, id, openStore(), nil)
		done <- err
	}()
	for blocked.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	// A different session submits through the same orchestrator freely.
	go func() { close(blocked.release) }()
	_, err = orch.Submit(context.Background(), validDraft(), other, cart.ScopedKey("sess2", 1), openStore(), nil)
	require.NoError(t, err)
	require.NoError(t, <-done)
}

// A context cancelled mid-flight still lets the request finish; the
// receipt is withheld so the caller cannot act on a discarded dialog.
func TestSubmitCancelledContextDiscardsResult(t *testing.T) {
	sessions, id := sessionWithCart(t)
	sub := &fakeSubmitter{release: make(chan struct{})}
	orch := NewOrchestrator(sub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var receipt Receipt
	var err error
	go func() {
		receipt, err = orch.Submit(ctx, validDraft(), sessions, id, openStore(), nil)
		close(done)
	}()

	for sub.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	close(sub.release)
	<-done

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, receipt.Numero)
	// The order was definitively created, so the cart is still cleared.
	assert.Empty(t, sessions.Snapshot(id).Items)
}

// A cart filled on one storefront is invisible when the same session
// checks out against another store, so the submission never starts.
func TestSubmitOtherStoreSeesEmptyCart(t *testing.T) {
	sessions, _ := sessionWithCart(t)
	sub := &fakeSubmitter{}
	orch := NewOrchestrator(sub)

	otherStore := &models.Store{
		ID:     2,
		Slug:   "pizzas",
		Policy: models.StorePolicy{AcceptsOrders: true},
	}
	_, err := orch.Submit(context.Background(), validDraft(), sessions, cart.ScopedKey("sess", 2), otherStore, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cart", vErr.Field)
	assert.Equal(t, int64(0), sub.calls.Load())

	// The original store's cart is untouched.
	assert.Len(t, sessions.Snapshot(cart.ScopedKey("sess", 1)).Items, 1)
}
