package domain

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleCustomer     UserRole = "customer"
	RoleProfessional UserRole = "professional"
)

// User is the account row shared by all three roles. Exactly one of
// Customer/Professional exists for non-admin users, matching Role.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex;not null" validate:"required,min=3,max=80"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"size:256;not null"`
	Role         UserRole  `json:"role" gorm:"size:50;index;not null"`
	Address      string    `json:"address,omitempty" gorm:"size:200;index"`
	Pin          string    `json:"pin,omitempty" gorm:"size:20;index"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	APIKey       *string   `json:"-" gorm:"size:32;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Customer     *Customer     `json:"customer,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Professional *Professional `json:"professional,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Customer struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	UserID       int64     `json:"user_id" gorm:"uniqueIndex;not null"`
	AdminBlocked bool      `json:"admin_blocked" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Professional offers exactly one Service. IsVerified and VerificationFailed
// are mutually exclusive and only flipped by an admin.
type Professional struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	UserID             int64     `json:"user_id" gorm:"uniqueIndex;not null"`
	ServiceID          int64     `json:"service_id" gorm:"index;not null"`
	Description        string    `json:"description,omitempty" gorm:"type:text"`
	Experience         int       `json:"experience,omitempty"`
	Document           string    `json:"document,omitempty" gorm:"size:255"`
	IsVerified         bool      `json:"is_verified" gorm:"not null;default:false"`
	VerificationFailed bool      `json:"verification_failed" gorm:"not null;default:false"`
	AdminBlocked       bool      `json:"admin_blocked" gorm:"not null;default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (Professional) TableName() string { return "service_professionals" }
