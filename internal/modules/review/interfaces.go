package review

import (
	"context"

	"servicehub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Review, error)
}

type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
}
