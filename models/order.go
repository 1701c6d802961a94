package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type DeliveryType string
type PaymentMethod string

const (
	// Order statuses, in preparation order
	OrderStatusPending        OrderStatus = "pending"          // Order placed, awaiting confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // Confirmed by the store
	OrderStatusPreparing      OrderStatus = "preparing"        // In the kitchen
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Courier on the way
	OrderStatusDelivered      OrderStatus = "delivered"        // Customer received the order
	OrderStatusCancelled      OrderStatus = "cancelled"        // Cancelled before completion

	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"

	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodCash       PaymentMethod = "cash"
)

// orderFlow maps each status to the single status that follows it in the
// happy path. Cancellation is handled separately.
var orderFlow = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving to next is a legal single step:
// one step forward along the preparation flow, or cancellation from any
// non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() || s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderFlow[s] == next
}

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(status))
	if !s.IsValid() {
		return "", errors.New("invalid order status")
	}
	return s, nil
}

func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypePickup || d == DeliveryTypeDelivery
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodPix || m == PaymentMethodCreditCard || m == PaymentMethodCash
}

// StateError is returned when an illegal status transition is requested.
// It is raised locally, before any write or network call happens.
type StateError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("illegal order status transition: %s -> %s", e.From, e.To)
}

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Numero        string          `gorm:"uniqueIndex;not null" json:"numero_pedido"`
	StoreID       uint            `gorm:"index;not null" json:"store_id"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CustomerName  string          `gorm:"not null" json:"customer_name"`
	CustomerPhone string          `gorm:"not null" json:"customer_phone"`
	DeliveryType  DeliveryType    `gorm:"type:VARCHAR(10);not null" json:"delivery_type"`
	Address       Address         `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	PaymentMethod PaymentMethod   `gorm:"type:VARCHAR(15);not null" json:"payment_method"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	Subtotal      decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	Discount      decimal.Decimal `gorm:"type:numeric" json:"discount"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric" json:"delivery_fee"`
	Total         decimal.Decimal `gorm:"type:numeric" json:"total"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`

	// One timestamp per lifecycle transition
	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	PreparingAt      *time.Time `json:"preparing_at,omitempty"`
	OutForDeliveryAt *time.Time `json:"out_for_delivery_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

// OrderItem snapshots a cart line at order time; later product edits
// never touch it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// Transition moves the order to next, stamping the matching timestamp.
// Illegal edges return a *StateError and leave the order untouched.
func (o *Order) Transition(next OrderStatus, at time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return &StateError{From: o.Status, To: next}
	}
	o.Status = next
	switch next {
	case OrderStatusConfirmed:
		o.ConfirmedAt = &at
	case OrderStatusPreparing:
		o.PreparingAt = &at
	case OrderStatusOutForDelivery:
		o.OutForDeliveryAt = &at
	case OrderStatusDelivered:
		o.DeliveredAt = &at
	case OrderStatusCancelled:
		o.CancelledAt = &at
	}
	return nil
}
