package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"super_crunch/internal/cart"
	"super_crunch/internal/models"
	"super_crunch/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type APIHandler struct {
	orderService        services.OrderService
	catalogService      services.CatalogService
	availabilityService services.AvailabilityService
	gate                services.Admission
	carts               cart.Persistence
}

func NewAPIHandler(
	orderService services.OrderService,
	catalogService services.CatalogService,
	availabilityService services.AvailabilityService,
	gate services.Admission,
	carts cart.Persistence,
) *APIHandler {
	return &APIHandler{
		orderService:        orderService,
		catalogService:      catalogService,
		availabilityService: availabilityService,
		gate:                gate,
		carts:               carts,
	}
}

// Availability endpoints

func (h *APIHandler) GetAvailability(c *gin.Context) {
	// Always 200: a missing or unreadable status row reads as open.
	c.JSON(http.StatusOK, gin.H{"is_open": h.availabilityService.IsOpen()})
}

func (h *APIHandler) UpdateAvailability(c *gin.Context) {
	var req struct {
		IsOpen *bool `json:"is_open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_open is required"})
		return
	}

	if err := h.availabilityService.SetOpen(*req.IsOpen); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_open": *req.IsOpen})
}

// Catalog endpoints

func (h *APIHandler) GetCatalog(c *gin.Context) {
	dishes, err := h.catalogService.VisibleDishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *APIHandler) ListAllDishes(c *gin.Context) {
	dishes, err := h.catalogService.AllDishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dishes"})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *APIHandler) CreateDish(c *gin.Context) {
	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if dish.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := h.catalogService.CreateDish(&dish); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dish"})
		return
	}
	c.JSON(http.StatusCreated, dish)
}

func (h *APIHandler) UpdateDish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	dish.ID = uint(id)

	if err := h.catalogService.UpdateDish(&dish); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dish"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *APIHandler) DeleteDish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	if err := h.catalogService.DeleteDish(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish deleted"})
}

// Order endpoints

type orderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    any    `json:"price"`
}

type createOrderRequest struct {
	CustomerName         string             `json:"customer_name"`
	CustomerPhone        string             `json:"customer_phone"`
	CustomerAddress      string             `json:"customer_address"`
	Items                []orderItemRequest `json:"items"`
	CouponCode           string             `json:"coupon_code"`
	DeliveryInstructions []string           `json:"delivery_instructions"`
	CookingInstructions  string             `json:"cooking_instructions"`
}

func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items := make([]cart.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, cart.Item{Name: it.Name, Price: priceToString(it.Price), Quantity: it.Quantity})
	}

	order, err := h.orderService.Submit(services.SubmitOrderInput{
		CustomerName:         req.CustomerName,
		CustomerPhone:        req.CustomerPhone,
		CustomerAddress:      req.CustomerAddress,
		Items:                items,
		CouponCode:           req.CouponCode,
		DeliveryInstructions: req.DeliveryInstructions,
		CookingInstructions:  req.CookingInstructions,
	})
	if err != nil {
		h.submissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
		"message": "Order placed successfully",
	})
}

func (h *APIHandler) ListOrders(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.orderService.ListOrders(status, limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and status are required"})
		return
	}

	order, err := h.orderService.UpdateStatus(req.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
		"message": "Order updated successfully",
	})
}

// Cart endpoints. The cart is session-local: each request names its
// session via X-Session-ID and the store round-trips the snapshot through
// redis. A missing header starts a fresh session, echoed back in the
// response header.

func (h *APIHandler) GetCart(c *gin.Context) {
	store, sessionID := h.sessionCart(c)
	h.cartResponse(c, http.StatusOK, store, sessionID)
}

func (h *APIHandler) AddCartItem(c *gin.Context) {
	if !h.gate.IsOpen() {
		c.JSON(http.StatusForbidden, gin.H{"error": "restaurant is currently closed"})
		return
	}

	var req orderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	store, sessionID := h.sessionCart(c)
	store.Add(cart.Item{Name: req.Name, Price: priceToString(req.Price)})
	h.cartResponse(c, http.StatusOK, store, sessionID)
}

func (h *APIHandler) RemoveCartItem(c *gin.Context) {
	if !h.gate.IsOpen() {
		c.JSON(http.StatusForbidden, gin.H{"error": "restaurant is currently closed"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	store, sessionID := h.sessionCart(c)
	store.Remove(req.Name)
	h.cartResponse(c, http.StatusOK, store, sessionID)
}

func (h *APIHandler) ClearCart(c *gin.Context) {
	store, sessionID := h.sessionCart(c)
	store.Clear()
	h.cartResponse(c, http.StatusOK, store, sessionID)
}

type checkoutRequest struct {
	CustomerName        string                       `json:"customer_name"`
	CustomerPhone       string                       `json:"customer_phone"`
	CustomerAddress     string                       `json:"customer_address"`
	CouponCode          *string                      `json:"coupon_code"`
	DeliveryPreferences services.DeliveryPreferences `json:"delivery_preferences"`
	CookingInstructions string                       `json:"cooking_instructions"`
}

func (h *APIHandler) CheckoutCart(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// An explicitly supplied blank coupon is rejected locally, before the
	// pipeline runs. An absent coupon field is simply no coupon.
	couponCode := ""
	if req.CouponCode != nil {
		if *req.CouponCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coupon code cannot be empty"})
			return
		}
		couponCode = *req.CouponCode
	}

	store, sessionID := h.sessionCart(c)
	order, err := h.orderService.Checkout(store, services.CheckoutInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		CouponCode:          couponCode,
		Preferences:         req.DeliveryPreferences,
		CookingInstructions: req.CookingInstructions,
	})
	if err != nil {
		h.submissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"session_id":   sessionID,
		"order_number": order.OrderNumber,
		"order":        order,
	})
}

func (h *APIHandler) sessionCart(c *gin.Context) (*cart.Store, string) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header("X-Session-ID", sessionID)

	store := cart.NewStore(sessionID, h.carts)
	store.Restore()
	return store, sessionID
}

func (h *APIHandler) cartResponse(c *gin.Context, code int, store *cart.Store, sessionID string) {
	c.JSON(code, gin.H{
		"session_id":  sessionID,
		"items":       store.Items(),
		"total_items": store.TotalItemCount(),
		"total_price": store.TotalPrice(),
		"is_open":     h.gate.IsOpen(),
	})
}

func (h *APIHandler) submissionError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrCartEmpty), errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStoreClosed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		// Retryable: the cart was not cleared.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order, please try again"})
	}
}

// priceToString keeps whatever price representation the client sent; the
// pricing package parses it wherever totals are computed.
func priceToString(price any) string {
	switch v := price.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}
