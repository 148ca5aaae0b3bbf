package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type ProfessionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	var p domain.Professional
	tx := r.db.WithContext(ctx).Preload("User").Preload("Service").First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProfessionalRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	var p domain.Professional
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProfessionalRepository) Update(ctx context.Context, p *domain.Professional) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// SetVerification flips the mutually exclusive verification flags.
func (r *ProfessionalRepository) SetVerification(ctx context.Context, id int64, verified, failed bool) error {
	return r.db.WithContext(ctx).Model(&domain.Professional{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified":         verified,
			"verification_failed": failed,
		}).Error
}

func (r *ProfessionalRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.db.WithContext(ctx).Model(&domain.Professional{}).
		Where("id = ?", id).
		Update("admin_blocked", blocked).Error
}

func (r *ProfessionalRepository) CountByService(ctx context.Context, serviceID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Professional{}).
		Where("service_id = ?", serviceID).
		Count(&cnt)
	return cnt, tx.Error
}

// SearchVerified returns verified, non-blocked professionals, optionally
// narrowed by service and a case-insensitive identity substring.
func (r *ProfessionalRepository) SearchVerified(ctx context.Context, serviceID int64, q string) ([]domain.Professional, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Professional{}).
		Joins("JOIN users ON users.id = service_professionals.user_id").
		Where("service_professionals.is_verified = ? AND service_professionals.admin_blocked = ?", true, false)

	if serviceID > 0 {
		tx = tx.Where("service_professionals.service_id = ?", serviceID)
	}
	if q = strings.TrimSpace(q); q != "" {
		term := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(users.username) LIKE ? OR LOWER(users.address) LIKE ? OR LOWER(users.pin) LIKE ?",
			term, term, term,
		)
	}

	var pros []domain.Professional
	err := tx.Preload("User").Preload("Service").Find(&pros).Error
	return pros, err
}

// SearchIdentity is the admin-side search over all professionals regardless of
// verification or blocking.
func (r *ProfessionalRepository) SearchIdentity(ctx context.Context, q string) ([]domain.Professional, error) {
	term := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"

	var pros []domain.Professional
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = service_professionals.user_id").
		Where(
			"LOWER(users.username) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(users.address) LIKE ? OR LOWER(users.pin) LIKE ?",
			term, term, term, term,
		).
		Preload("User").Preload("Service").
		Find(&pros)
	return pros, tx.Error
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]domain.Professional, error) {
	var pros []domain.Professional
	tx := r.db.WithContext(ctx).Preload("User").Preload("Service").Order("id").Find(&pros)
	return pros, tx.Error
}
