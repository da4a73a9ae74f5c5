package repository

import (
	"super_crunch/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusRepository interface {
	Get() (bool, error)
	Set(isOpen bool) error
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

// Get reads the single status row. A missing row means the restaurant has
// never been toggled and counts as open.
func (r *statusRepository) Get() (bool, error) {
	var status models.RestaurantStatus
	err := r.db.First(&status, models.RestaurantStatusID).Error
	if err == gorm.ErrRecordNotFound {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	return status.IsOpen, nil
}

func (r *statusRepository) Set(isOpen bool) error {
	status := models.RestaurantStatus{ID: models.RestaurantStatusID, IsOpen: isOpen}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_open", "updated_at"}),
	}).Create(&status).Error
}
