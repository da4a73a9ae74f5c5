package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	OrderNumber          string         `json:"order_number" gorm:"unique;not null"`
	CustomerName         string         `json:"customer_name" gorm:"not null"`
	CustomerPhone        string         `json:"customer_phone" gorm:"not null"`
	CustomerAddress      string         `json:"customer_address" gorm:"not null"`
	Items                []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal             float64        `json:"subtotal" gorm:"not null"`
	Discount             float64        `json:"discount"`
	Total                float64        `json:"total" gorm:"not null"`
	CouponCode           *string        `json:"coupon_code"`
	DeliveryInstructions []string       `json:"delivery_instructions" gorm:"serializer:json"`
	CookingInstructions  string         `json:"cooking_instructions" gorm:"type:text"`
	Status               string         `json:"status" gorm:"default:'pending'"` // pending, confirmed, preparing, out_for_delivery, delivered, cancelled
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the status enum.
// Transitions are deliberately permissive: staff can overwrite any status
// with any other to correct mis-clicks.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
