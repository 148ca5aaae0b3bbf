package request

import (
	"context"

	"servicehub/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
	HasActive(ctx context.Context, customerID, professionalID int64) (bool, error)
	UpdateFrom(ctx context.Context, id int64, from domain.RequestStatus, updates map[string]any) (bool, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceRequest, error)
	ListIncoming(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error)
	ListHandled(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error)
	CountByProfessionalAndStatus(ctx context.Context, professionalID int64, status domain.RequestStatus) (int64, error)
}

type ProfessionalReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

type RatingReader interface {
	AverageForProfessional(ctx context.Context, professionalID int64) (*float64, error)
}
