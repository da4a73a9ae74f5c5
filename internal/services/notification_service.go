package services

import (
	"fmt"
	"log"
	"strings"

	"super_crunch/internal/models"
	"super_crunch/pkg/whatsapp"
)

type NotificationService interface {
	NotifyOrder(order *models.Order) error
}

type notificationService struct {
	client *whatsapp.Client
	phone  string
}

// NewNotificationService sends new-order summaries to the outlet's
// WhatsApp number. With no client or phone configured the rendered message
// is logged instead, so local setups still show incoming orders.
func NewNotificationService(client *whatsapp.Client, phone string) NotificationService {
	return &notificationService{client: client, phone: phone}
}

func (s *notificationService) NotifyOrder(order *models.Order) error {
	message := RenderOrderMessage(order)

	if s.client == nil || s.phone == "" {
		log.Printf("order notification (console mode):\n%s", message)
		return nil
	}

	return s.client.SendTextMessage(s.phone, message)
}

// RenderOrderMessage builds the human-readable order summary sent to
// staff. WhatsApp renders *text* as bold.
func RenderOrderMessage(o *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order %s*\n\n", o.OrderNumber)
	fmt.Fprintf(&b, "*Name:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "*Address:* %s\n", o.CustomerAddress)

	if len(o.DeliveryInstructions) > 0 {
		b.WriteString("\n*Delivery Instructions:*\n")
		for _, line := range o.DeliveryInstructions {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	if o.CookingInstructions != "" {
		fmt.Fprintf(&b, "\n*Cooking Instructions:*\n%s\n", o.CookingInstructions)
	}

	b.WriteString("\n*Order Details:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%dx %s - ₹%.2f each = ₹%.2f\n", item.Quantity, item.ItemName, item.UnitPrice, item.LineTotal)
	}

	fmt.Fprintf(&b, "\nSubtotal: ₹%.2f\n", o.Subtotal)
	if o.CouponCode != nil {
		fmt.Fprintf(&b, "Coupon (%s): -₹%.2f\n", *o.CouponCode, o.Discount)
	}
	fmt.Fprintf(&b, "*Total: ₹%.2f*\n", o.Total)
	fmt.Fprintf(&b, "\nStatus: %s\nPlease call the customer to confirm the order.", strings.ToUpper(o.Status))

	return b.String()
}
