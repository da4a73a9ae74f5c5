package repository

import (
	"super_crunch/internal/models"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	List(status string, limit, offset int) ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create stores the order and its item rows in one transaction: either the
// full record lands with its items, or nothing does.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first. status filters when non-empty and not
// "all". The page size is bounded.
func (r *orderRepository) List(status string, limit, offset int) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	query := r.db.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

// UpdateStatus writes only the status column and returns the refreshed
// record. All other order fields stay frozen from creation.
func (r *orderRepository) UpdateStatus(id uint, status string) (*models.Order, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}
