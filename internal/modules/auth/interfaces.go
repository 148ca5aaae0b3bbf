package auth

import (
	"context"

	"servicehub/internal/domain"
)

type UserRepository interface {
	CreateWithProfile(ctx context.Context, u *domain.User, customer *domain.Customer, professional *domain.Professional) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

type CustomerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

type ProfessionalRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	Update(ctx context.Context, p *domain.Professional) error
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
