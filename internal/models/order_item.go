package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a frozen snapshot of a cart line at submission time.
// Name and price are copied from the cart, not referenced from the catalog,
// so later menu edits never change a placed order.
type OrderItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	ItemName  string         `json:"name" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null"`
	UnitPrice float64        `json:"unit_price" gorm:"not null"`
	LineTotal float64        `json:"line_total" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
