package admin

import (
	"context"

	"servicehub/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByType(ctx context.Context, serviceType string) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
}

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	SetVerification(ctx context.Context, id int64, verified, failed bool) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	CountByService(ctx context.Context, serviceID int64) (int64, error)
	SearchIdentity(ctx context.Context, q string) ([]domain.Professional, error)
	List(ctx context.Context) ([]domain.Professional, error)
}

type CustomerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	SearchIdentity(ctx context.Context, q string) ([]domain.Customer, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RequestStats interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
	ListByStatuses(ctx context.Context, statuses []domain.RequestStatus) ([]domain.ServiceRequest, error)
}

type ReviewStats interface {
	CountByRating(ctx context.Context) (map[int]int64, error)
}
