package apiv1

import (
	"context"

	"servicehub/internal/domain"
)

type ServiceLister interface {
	List(ctx context.Context) ([]domain.Service, error)
}

type CustomerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

type ProfessionalReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
}

type RequestLister interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceRequest, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error)
}
