package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"super_crunch/internal/cart"
	"super_crunch/internal/models"
	"super_crunch/internal/pricing"
	"super_crunch/internal/repository"

	"github.com/google/uuid"
)

// Admission is the checkout gate: whether orders may be accepted right now.
type Admission interface {
	IsOpen() bool
}

// Notifier receives a freshly persisted order. Its outcome never affects
// the submission result.
type Notifier interface {
	NotifyOrder(order *models.Order) error
}

type SubmitOrderInput struct {
	CustomerName         string
	CustomerPhone        string
	CustomerAddress      string
	Items                []cart.Item
	CouponCode           string
	DeliveryInstructions []string
	CookingInstructions  string
}

type CheckoutInput struct {
	CustomerName        string
	CustomerPhone       string
	CustomerAddress     string
	CouponCode          string
	Preferences         DeliveryPreferences
	CookingInstructions string
}

type OrderService interface {
	Submit(input SubmitOrderInput) (*models.Order, error)
	Checkout(store *cart.Store, input CheckoutInput) (*models.Order, error)
	ListOrders(status string, limit, offset int) ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	gate      Admission
	notifier  Notifier
	discounts DiscountPolicy
}

func NewOrderService(orderRepo repository.OrderRepository, gate Admission, notifier Notifier, discounts DiscountPolicy) OrderService {
	if discounts == nil {
		discounts = AcceptAllPolicy{}
	}
	return &orderService{orderRepo: orderRepo, gate: gate, notifier: notifier, discounts: discounts}
}

// Submit converts a cart snapshot plus customer fields into a persisted
// order. Validation failures happen before any side effect; the order row
// and its item rows are written atomically; the notification is
// fire-and-forget after the write commits.
func (s *orderService) Submit(in SubmitOrderInput) (*models.Order, error) {
	if err := validateSubmission(in); err != nil {
		return nil, err
	}
	if s.gate != nil && !s.gate.IsOpen() {
		return nil, ErrStoreClosed
	}

	subtotal := cart.Subtotal(in.Items)

	var couponCode *string
	discount := 0.0
	if code := strings.TrimSpace(in.CouponCode); code != "" {
		discount = s.discounts.Apply(code, subtotal)
		couponCode = &code
	}
	total := pricing.GrandTotal(subtotal, discount)

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		unit := pricing.Parse(it.Price)
		items = append(items, models.OrderItem{
			ItemName:  it.Name,
			Quantity:  it.Quantity,
			UnitPrice: unit,
			LineTotal: pricing.LineTotal(unit, it.Quantity),
		})
	}

	order := &models.Order{
		OrderNumber:          generateOrderNumber(),
		CustomerName:         strings.TrimSpace(in.CustomerName),
		CustomerPhone:        strings.TrimSpace(in.CustomerPhone),
		CustomerAddress:      strings.TrimSpace(in.CustomerAddress),
		Items:                items,
		Subtotal:             subtotal,
		Discount:             discount,
		Total:                total,
		CouponCode:           couponCode,
		DeliveryInstructions: in.DeliveryInstructions,
		CookingInstructions:  strings.TrimSpace(in.CookingInstructions),
		Status:               string(models.OrderPending),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if s.notifier != nil {
		go func(o models.Order) {
			if err := s.notifier.NotifyOrder(&o); err != nil {
				log.Printf("order notification failed for %s: %v", o.OrderNumber, err)
			}
		}(*order)
	}

	return order, nil
}

// Checkout runs Submit against the session cart and clears the cart only
// after a successful persist, so a failed submission can be retried
// without rebuilding the cart.
func (s *orderService) Checkout(store *cart.Store, in CheckoutInput) (*models.Order, error) {
	order, err := s.Submit(SubmitOrderInput{
		CustomerName:         in.CustomerName,
		CustomerPhone:        in.CustomerPhone,
		CustomerAddress:      in.CustomerAddress,
		Items:                store.Items(),
		CouponCode:           in.CouponCode,
		DeliveryInstructions: in.Preferences.Instructions(),
		CookingInstructions:  in.CookingInstructions,
	})
	if err != nil {
		return nil, err
	}

	store.Clear()
	return order, nil
}

func (s *orderService) ListOrders(status string, limit, offset int) ([]models.Order, error) {
	if status != "" && status != "all" && !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.List(status, limit, offset)
}

func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func validateSubmission(in SubmitOrderInput) error {
	if len(in.Items) == 0 {
		return ErrCartEmpty
	}
	for _, it := range in.Items {
		if it.Quantity < 1 || strings.TrimSpace(it.Name) == "" {
			return &ValidationError{Field: "items"}
		}
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return &ValidationError{Field: "customer_name"}
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return &ValidationError{Field: "customer_phone"}
	}
	if strings.TrimSpace(in.CustomerAddress) == "" {
		return &ValidationError{Field: "customer_address"}
	}
	return nil
}

// generateOrderNumber combines the submission time with a random
// tie-breaker. No central sequence: independent clients submitting in the
// same millisecond still get distinct numbers.
func generateOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
