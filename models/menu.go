package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem is one sellable entry on the menu. Price is the live catalog
// price; checkout copies it into the order line and never reads it back.
type MenuItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Category  string          `gorm:"index" json:"category"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Available bool            `gorm:"default:true" json:"available"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
