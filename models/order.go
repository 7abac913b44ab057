package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID   uint            `gorm:"index;not null" json:"customer_id"`
	Customer     Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	OrderRef     string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	Street       string          `json:"street"`
	Number       string          `json:"number"`
	Neighborhood string          `json:"neighborhood"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint `gorm:"index" json:"order_id"`
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
	// UnitPrice is frozen at checkout time. It must never be recomputed
	// from the live menu, even if the menu price changes later.
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price"`
}
