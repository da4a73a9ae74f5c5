package repository

import (
	"super_crunch/internal/models"

	"gorm.io/gorm"
)

type DishRepository interface {
	Create(dish *models.Dish) error
	GetByID(id uint) (*models.Dish, error)
	GetVisible() ([]models.Dish, error)
	GetAll() ([]models.Dish, error)
	Update(dish *models.Dish) error
	Delete(id uint) error
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *dishRepository) GetByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetVisible() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Where("is_visible = ?", true).Order("category").Order("name").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) GetAll() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Order("category").Order("name").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) Update(dish *models.Dish) error {
	return r.db.Save(dish).Error
}

func (r *dishRepository) Delete(id uint) error {
	return r.db.Delete(&models.Dish{}, id).Error
}
