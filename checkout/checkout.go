package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/models"
)

// Draft collects the customer's checkout selections. It lives only for
// the duration of the checkout flow; nothing persists it.
type Draft struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	DeliveryType  models.DeliveryType  `json:"delivery_type"`
	Address       models.Address       `json:"address"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CouponCode    string               `json:"coupon_code,omitempty"`
}

// ValidationError reports a user-correctable problem with the draft or
// the store policy. Field names the offending input for field-level
// display.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks a draft against the cart and the store policy.
// A cart total exactly equal to the minimum order value passes.
func Validate(d Draft, state cart.State, store *models.Store) error {
	if !store.Policy.AcceptsOrders {
		return &ValidationError{Field: "store", Reason: "store is not accepting orders"}
	}
	if len(state.Items) == 0 {
		return &ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	if d.CustomerName == "" {
		return &ValidationError{Field: "customer_name", Reason: "name is required"}
	}
	if d.CustomerPhone == "" {
		return &ValidationError{Field: "customer_phone", Reason: "phone is required"}
	}
	if !d.DeliveryType.IsValid() {
		return &ValidationError{Field: "delivery_type", Reason: "must be pickup or delivery"}
	}
	if d.DeliveryType == models.DeliveryTypeDelivery && d.Address.Incomplete() {
		return &ValidationError{Field: "address", Reason: "all address fields are required for delivery"}
	}
	if !d.PaymentMethod.IsValid() {
		return &ValidationError{Field: "payment_method", Reason: "must be pix, credit_card or cash"}
	}
	if min := store.Policy.MinimumOrderValue; min != nil && state.Total.LessThan(*min) {
		return &ValidationError{
			Field:  "cart",
			Reason: fmt.Sprintf("order total %s is below the minimum of %s", state.Total, min),
		}
	}
	return nil
}

// Totals is the priced breakdown of an order.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Price computes the totals for a cart under the store policy and an
// optional coupon. The delivery fee only applies to delivery orders.
func Price(state cart.State, store *models.Store, coupon *models.Coupon, deliveryType models.DeliveryType) Totals {
	t := Totals{
		Subtotal:    state.Total,
		Discount:    decimal.Zero,
		DeliveryFee: decimal.Zero,
	}
	if coupon != nil {
		t.Discount = coupon.Discount(t.Subtotal)
	}
	if deliveryType == models.DeliveryTypeDelivery && store.Policy.DeliveryFee != nil {
		t.DeliveryFee = *store.Policy.DeliveryFee
	}
	t.Total = t.Subtotal.Sub(t.Discount).Add(t.DeliveryFee)
	return t
}
