package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).Preload("User").First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", id).
		Update("admin_blocked", blocked).Error
}

// SearchIdentity filters customers by case-insensitive substring match over
// the joined user's identity fields.
func (r *CustomerRepository) SearchIdentity(ctx context.Context, q string) ([]domain.Customer, error) {
	term := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"

	var customers []domain.Customer
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = customers.user_id").
		Where(
			"LOWER(users.username) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(users.address) LIKE ? OR LOWER(users.pin) LIKE ?",
			term, term, term, term,
		).
		Preload("User").
		Find(&customers)
	return customers, tx.Error
}
