package domain

import "time"

// Review is immutable once created. The unique index on ServiceRequestID
// enforces at most one review per request.
type Review struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	CustomerID       int64     `json:"customer_id" gorm:"index;not null"`
	ProfessionalID   int64     `json:"professional_id" gorm:"index;not null"`
	ServiceID        int64     `json:"service_id" gorm:"index;not null"`
	ServiceRequestID int64     `json:"service_request_id" gorm:"uniqueIndex;not null"`
	Rating           int       `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	Remarks          string    `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
