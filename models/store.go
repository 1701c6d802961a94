package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Store struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string        `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	Branding    StoreBranding `gorm:"embedded" json:"branding"`
	Policy      StorePolicy   `gorm:"embedded" json:"policy"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// StoreBranding holds the merchant's customization attributes. Missing
// values are filled in by the theme resolver at render time, never here.
type StoreBranding struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	TitleFont       string `json:"title_font"`
	BodyFont        string `json:"body_font"`
}

// StorePolicy gates whether the store takes orders and under which terms.
type StorePolicy struct {
	AcceptsOrders       bool             `gorm:"default:true" json:"accepts_orders"`
	MinimumOrderValue   *decimal.Decimal `gorm:"type:numeric" json:"minimum_order_value,omitempty"`
	DeliveryFee         *decimal.Decimal `gorm:"type:numeric" json:"delivery_fee,omitempty"`
	PreparationTimeMins int              `json:"preparation_time_minutes"`
}

// Address is embedded wherever a postal address is snapshotted.
type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Incomplete reports whether any required address field is missing.
func (a Address) Incomplete() bool {
	return a.PostalCode == "" || a.Street == "" || a.Number == "" ||
		a.Neighborhood == "" || a.City == "" || a.State == ""
}
