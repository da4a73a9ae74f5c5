package models

import (
	"time"

	"gorm.io/gorm"
)

type Dish struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Price       float64        `json:"price" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url"`
	Category    string         `json:"category" gorm:"default:'Snacks'"`
	Tags        string         `json:"tags"` // comma separated
	IsVisible   bool           `json:"is_visible" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
