package domain

import "time"

// Service is a category of work with a base price. It cannot be deleted while
// any professional is assigned to it.
type Service struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ServiceType string    `json:"service_type" gorm:"size:80;uniqueIndex;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	BasePrice   float64   `json:"base_price" gorm:"not null"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
