package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID   uint      `gorm:"index;not null" json:"store_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Label     string    `json:"label"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}

type CouponKind string

const (
	CouponKindPercent CouponKind = "percent"
	CouponKindFixed   CouponKind = "fixed"
)

type Coupon struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID   uint            `gorm:"index;not null;uniqueIndex:idx_store_code" json:"store_id"`
	Code      string          `gorm:"not null;uniqueIndex:idx_store_code" json:"code"`
	Kind      CouponKind      `gorm:"type:VARCHAR(10);not null" json:"kind"`
	Value     decimal.Decimal `gorm:"type:numeric;not null" json:"value"`
	Active    bool            `gorm:"default:true" json:"active"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Usable reports whether the coupon can still be applied at the given time.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// Discount computes the amount this coupon takes off a subtotal. The
// result never exceeds the subtotal and never goes negative.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.Kind {
	case CouponKindPercent:
		d = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	case CouponKindFixed:
		d = c.Value
	default:
		return decimal.Zero
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(subtotal) {
		return subtotal
	}
	return d
}
