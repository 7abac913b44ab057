package models

import "time"

type Customer struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"unique;not null" json:"email"`
	Orders    []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
