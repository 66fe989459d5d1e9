package models

import "time"

type Order struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	TableSessionID uint `gorm:"not null;index" json:"table_session_id"`
	// Omitting parent fields from JSON to avoid recursive nesting
	TableSession TableSession `gorm:"foreignKey:TableSessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID    uint         `gorm:"not null" json:"product_id"`
	Product      Product      `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quantity     int          `gorm:"not null" json:"quantity"`
	// Price is a snapshot of the product price at order time, never rewritten
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// OrderDetail is the order row a waiter sees: the order joined with the
// product name, plus the line total.
type OrderDetail struct {
	ID             uint      `json:"id"`
	TableSessionID uint      `json:"table_session_id"`
	ProductID      uint      `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Price          float64   `json:"price"`
	Quantity       int       `json:"quantity"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OrderSummary aggregates a session's bill. Zero-valued when the session has
// no orders.
type OrderSummary struct {
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}
