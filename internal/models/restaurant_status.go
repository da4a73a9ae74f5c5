package models

import "time"

// RestaurantStatus is a single-row table (id = 1) holding the ordering
// admission flag. Absent or unreadable rows are treated as open.
type RestaurantStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	IsOpen    bool      `json:"is_open" gorm:"default:true"`
	UpdatedAt time.Time `json:"updated_at"`
}

const RestaurantStatusID uint = 1
