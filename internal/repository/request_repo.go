package repository

import (
	"context"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer.User").
		Preload("Professional.User").
		Preload("Review").
		First(&req, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &req, nil
}

// HasActive reports whether the customer already has a REQUESTED or ACCEPTED
// engagement with the professional.
func (r *RequestRepository) HasActive(ctx context.Context, customerID, professionalID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("customer_id = ? AND professional_id = ? AND status IN ?",
			customerID, professionalID,
			[]domain.RequestStatus{domain.StatusRequested, domain.StatusAccepted}).
		Count(&cnt)
	return cnt > 0, tx.Error
}

// UpdateFrom applies updates only while the row is still in the given source
// state. The state check rides in the UPDATE's WHERE clause so a concurrent or
// illegal transition changes nothing; the caller treats a false return as a
// state conflict.
func (r *RequestRepository) UpdateFrom(ctx context.Context, id int64, from domain.RequestStatus, updates map[string]any) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *RequestRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional.User").
		Preload("Review").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&reqs)
	return reqs, tx.Error
}

func (r *RequestRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer.User").
		Where("professional_id = ?", professionalID).
		Order("date_of_request DESC").
		Find(&reqs)
	return reqs, tx.Error
}

// ListIncoming returns the professional's still-pending requests.
func (r *RequestRepository) ListIncoming(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer.User").
		Where("professional_id = ? AND status = ?", professionalID, domain.StatusRequested).
		Order("date_of_request DESC").
		Find(&reqs)
	return reqs, tx.Error
}

// ListHandled returns every request the professional has already acted on.
func (r *RequestRepository) ListHandled(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer.User").
		Where("professional_id = ? AND status <> ?", professionalID, domain.StatusRequested).
		Order("date_of_request DESC").
		Find(&reqs)
	return reqs, tx.Error
}

func (r *RequestRepository) ListByStatuses(ctx context.Context, statuses []domain.RequestStatus) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer.User").
		Preload("Professional.User").
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&reqs)
	return reqs, tx.Error
}

type statusCountRow struct {
	Status string
	Count  int64
}

func (r *RequestRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []statusCountRow
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *RequestRepository) CountByProfessionalAndStatus(ctx context.Context, professionalID int64, status domain.RequestStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("professional_id = ? AND status = ?", professionalID, status).
		Count(&cnt)
	return cnt, tx.Error
}
