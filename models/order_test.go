package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},

		// Skipping a step is not a legal single edge.
		{OrderStatusPending, OrderStatusPreparing, false},
		{OrderStatusConfirmed, OrderStatusDelivered, false},

		// No going backwards.
		{OrderStatusDelivered, OrderStatusPreparing, false},
		{OrderStatusPreparing, OrderStatusConfirmed, false},

		// Cancellation from any non-terminal status.
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusOutForDelivery, OrderStatusCancelled, true},

		// Terminal statuses accept nothing.
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},

		// Unknown target.
		{OrderStatusPending, OrderStatus("shipped"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	at := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, order.Transition(OrderStatusConfirmed, at))
	require.NotNil(t, order.ConfirmedAt)
	assert.Equal(t, at, *order.ConfirmedAt)

	later := at.Add(5 * time.Minute)
	require.NoError(t, order.Transition(OrderStatusPreparing, later))
	require.NotNil(t, order.PreparingAt)
	assert.Equal(t, later, *order.PreparingAt)
	assert.Equal(t, OrderStatusPreparing, order.Status)
}

func TestTransitionRejectsIllegalEdgeLocally(t *testing.T) {
	order := &Order{Status: OrderStatusPending}

	err := order.Transition(OrderStatusPreparing, time.Now())
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, OrderStatusPending, stateErr.From)
	assert.Equal(t, OrderStatusPreparing, stateErr.To)

	// The order is left untouched.
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Nil(t, order.PreparingAt)
}

func TestTransitionCancelStampsCancelledAt(t *testing.T) {
	order := &Order{Status: OrderStatusPreparing}
	at := time.Now()

	require.NoError(t, order.Transition(OrderStatusCancelled, at))
	require.NotNil(t, order.CancelledAt)
	assert.True(t, order.Status.Terminal())
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("Out_For_Delivery")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusOutForDelivery, got)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}
