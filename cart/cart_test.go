package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/fomi-api/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func product(id uint, price string, promo string, available bool) *models.Product {
	p := &models.Product{
		ID:        id,
		StoreID:   1,
		Name:      "product",
		Price:     dec(price),
		Available: available,
	}
	if promo != "" {
		d := dec(promo)
		p.PromoPrice = &d
	}
	return p
}

func mustLine(t *testing.T, p *models.Product, qty int, note string) LineItem {
	t.Helper()
	li, err := NewLineItem(p, p.StoreID, qty, note)
	require.NoError(t, err)
	return li
}

func TestNewLineItemFreezesEffectivePrice(t *testing.T) {
	li := mustLine(t, product(1, "8.90", "6.90", true), 1, "")
	assert.True(t, li.UnitPrice.Equal(dec("6.90")))

	// A promo price at or above the regular price does not take effect.
	li = mustLine(t, product(2, "8.90", "9.90", true), 1, "")
	assert.True(t, li.UnitPrice.Equal(dec("8.90")))
}

func TestNewLineItemRejections(t *testing.T) {
	_, err := NewLineItem(product(1, "10.00", "", false), 1, 1, "")
	assert.ErrorIs(t, err, ErrProductUnavailable)

	_, err = NewLineItem(product(1, "10.00", "", true), 1, 0, "")
	assert.ErrorIs(t, err, ErrQuantity)

	// A product listed by store 1 cannot enter a cart for store 2.
	_, err = NewLineItem(product(1, "10.00", "", true), 2, 1, "")
	assert.ErrorIs(t, err, ErrWrongStore)
}

func TestAddItemMergesSameKey(t *testing.T) {
	p := product(1, "25.90", "", true)
	s := Empty()
	s = Reduce(s, AddItem{Item: mustLine(t, p, 2, "")})
	s = Reduce(s, AddItem{Item: mustLine(t, p, 3, "")})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.True(t, s.Total.Equal(dec("129.50")))
}

func TestAddItemDifferentNotesStaySeparate(t *testing.T) {
	p := product(1, "25.90", "", true)
	s := Empty()
	s = Reduce(s, AddItem{Item: mustLine(t, p, 1, "")})
	s = Reduce(s, AddItem{Item: mustLine(t, p, 1, "no onions")})

	require.Len(t, s.Items, 2)
	assert.True(t, s.Total.Equal(dec("51.80")))
}

func TestRemoveItemDropsEveryLineForProduct(t *testing.T) {
	p := product(1, "10.00", "", true)
	other := product(2, "5.00", "", true)
	s := Empty()
	s = Reduce(s, AddItem{Item: mustLine(t, p, 1, "")})
	s = Reduce(s, AddItem{Item: mustLine(t, p, 1, "extra cheese")})
	s = Reduce(s, AddItem{Item: mustLine(t, other, 1, "")})

	s = Reduce(s, RemoveItem{ProductID: 1})
	require.Len(t, s.Items, 1)
	assert.Equal(t, uint(2), s.Items[0].ProductID)
	assert.True(t, s.Total.Equal(dec("5.00")))
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	s := Reduce(Empty(), AddItem{Item: mustLine(t, product(1, "10.00", "", true), 1, "")})
	before := s
	s = Reduce(s, RemoveItem{ProductID: 99})
	assert.Equal(t, before.Items, s.Items)
	assert.True(t, before.Total.Equal(s.Total))
}

func TestUpdateQuantity(t *testing.T) {
	p := product(1, "10.00", "", true)
	key := LineKey{ProductID: 1}

	tests := []struct {
		name      string
		quantity  int
		wantItems int
		wantTotal string
	}{
		{"set to three", 3, 1, "30.00"},
		{"zero removes", 0, 0, "0"},
		{"negative removes", -1, 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(Empty(), AddItem{Item: mustLine(t, p, 2, "")})
			s = Reduce(s, UpdateQuantity{Key: key, Quantity: tt.quantity})
			assert.Len(t, s.Items, tt.wantItems)
			assert.True(t, s.Total.Equal(dec(tt.wantTotal)), "total = %s", s.Total)
		})
	}
}

func TestClearCart(t *testing.T) {
	s := Empty()
	s = Reduce(s, AddItem{Item: mustLine(t, product(1, "10.00", "", true), 4, "")})
	s = Reduce(s, AddItem{Item: mustLine(t, product(2, "3.33", "", true), 7, "")})

	s = Reduce(s, ClearCart{})
	assert.Empty(t, s.Items)
	assert.True(t, s.Total.IsZero())
}

// Total must stay the exact decimal sum across any operation sequence;
// 0.10 is the classic binary-float accumulation trap.
func TestTotalHasNoFloatDrift(t *testing.T) {
	p := product(1, "0.10", "", true)
	s := Empty()
	for i := 0; i < 100; i++ {
		s = Reduce(s, AddItem{Item: mustLine(t, p, 1, "")})
	}
	require.Len(t, s.Items, 1)
	assert.Equal(t, 100, s.Items[0].Quantity)
	assert.True(t, s.Total.Equal(dec("10.00")), "total = %s", s.Total)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Reduce(Empty(), AddItem{Item: mustLine(t, product(1, "10.00", "", true), 1, "")})
	_ = Reduce(s, UpdateQuantity{Key: LineKey{ProductID: 1}, Quantity: 9})
	assert.Equal(t, 1, s.Items[0].Quantity)
}

// The worked storefront scenario: 2x 25.90 plus one promo item at 6.90.
func TestCartTotalScenario(t *testing.T) {
	s := Empty()
	s = Reduce(s, AddItem{Item: mustLine(t, product(1, "25.90", "", true), 2, "")})
	s = Reduce(s, AddItem{Item: mustLine(t, product(2, "8.90", "6.90", true), 1, "")})
	assert.True(t, s.Total.Equal(dec("58.70")), "total = %s", s.Total)
}

func TestSessionsIsolateCarts(t *testing.T) {
	sessions := NewSessions(time.Hour)
	p := product(1, "10.00", "", true)

	sessions.Dispatch("a", AddItem{Item: mustLine(t, p, 1, "")})
	sessions.Dispatch("b", AddItem{Item: mustLine(t, p, 3, "")})

	assert.True(t, sessions.Snapshot("a").Total.Equal(dec("10.00")))
	assert.True(t, sessions.Snapshot("b").Total.Equal(dec("30.00")))
	assert.True(t, sessions.Snapshot("unknown").Total.IsZero())

	sessions.Drop("a")
	assert.Empty(t, sessions.Snapshot("a").Items)
	assert.Len(t, sessions.Snapshot("b").Items, 1)
}
