package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID     uint             `gorm:"index;not null" json:"store_id"`
	CategoryID  uint             `gorm:"index" json:"category_id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `gorm:"type:numeric;not null" json:"price"`
	PromoPrice  *decimal.Decimal `gorm:"type:numeric" json:"promo_price,omitempty"`
	Image       string           `json:"image"`
	Available   bool             `gorm:"default:true" json:"available"`
	Featured    bool             `gorm:"default:false" json:"featured"`
	Ingredients string           `json:"ingredients"`
	Allergens   string           `json:"allergens"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// EffectivePrice is the price a cart line freezes at add time: the
// promotional price when one is set and undercuts the regular price,
// otherwise the regular price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromoPrice != nil && p.PromoPrice.LessThan(p.Price) {
		return *p.PromoPrice
	}
	return p.Price
}
