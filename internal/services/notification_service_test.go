package services

import (
	"testing"

	"super_crunch/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderOrderMessage(t *testing.T) {
	coupon := "SAVE10"
	order := &models.Order{
		OrderNumber:     "ORD-1730000000000-abcdef123456",
		CustomerName:    "Asha",
		CustomerPhone:   "9998887776",
		CustomerAddress: "A-304",
		Items: []models.OrderItem{
			{ItemName: "Veg Momos", Quantity: 2, UnitPrice: 120, LineTotal: 240},
		},
		Subtotal:             240,
		Discount:             0,
		Total:                240,
		CouponCode:           &coupon,
		DeliveryInstructions: []string{"Avoid Calling"},
		CookingInstructions:  "Extra spicy",
		Status:               string(models.OrderPending),
	}

	message := RenderOrderMessage(order)

	assert.Contains(t, message, "ORD-1730000000000-abcdef123456")
	assert.Contains(t, message, "*Name:* Asha")
	assert.Contains(t, message, "2x Veg Momos - ₹120.00 each = ₹240.00")
	assert.Contains(t, message, "Subtotal: ₹240.00")
	assert.Contains(t, message, "Coupon (SAVE10): -₹0.00")
	assert.Contains(t, message, "*Total: ₹240.00*")
	assert.Contains(t, message, "- Avoid Calling")
	assert.Contains(t, message, "Extra spicy")
	assert.Contains(t, message, "PENDING")
}

func TestRenderOrderMessageOmitsEmptySections(t *testing.T) {
	order := &models.Order{
		OrderNumber:     "ORD-1730000000000-abcdef123456",
		CustomerName:    "Asha",
		CustomerPhone:   "9998887776",
		CustomerAddress: "A-304",
		Subtotal:        0,
		Total:           0,
		Status:          string(models.OrderPending),
	}

	message := RenderOrderMessage(order)
	assert.NotContains(t, message, "Coupon")
	assert.NotContains(t, message, "Delivery Instructions")
	assert.NotContains(t, message, "Cooking Instructions")
}

func TestConsoleModeNotificationNeverFails(t *testing.T) {
	svc := NewNotificationService(nil, "")
	err := svc.NotifyOrder(&models.Order{OrderNumber: "ORD-1-a", Status: string(models.OrderPending)})
	assert.NoError(t, err)
}
