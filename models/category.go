package models

type Category struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID uint   `gorm:"index;not null" json:"store_id"`
	Name    string `gorm:"not null" json:"name"`
}
