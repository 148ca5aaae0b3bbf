package catalog

import (
	"context"

	"servicehub/internal/domain"
)

type ServiceLister interface {
	List(ctx context.Context) ([]domain.Service, error)
}

type ProfessionalSearcher interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	SearchVerified(ctx context.Context, serviceID int64, q string) ([]domain.Professional, error)
}

type ReviewReader interface {
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Review, error)
	AverageForProfessional(ctx context.Context, professionalID int64) (*float64, error)
	AverageForProfessionals(ctx context.Context, professionalIDs []int64) (map[int64]float64, error)
}
