package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

// Service is the public browse surface: the service catalog, professional
// search and professional profiles. No authentication is required for any of
// it.
type Service struct {
	services      ServiceLister
	professionals ProfessionalSearcher
	reviews       ReviewReader
}

func NewService(services ServiceLister, professionals ProfessionalSearcher, reviews ReviewReader) *Service {
	return &Service{services: services, professionals: professionals, reviews: reviews}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

// SearchProfessionals lists verified, non-blocked professionals matching the
// optional service and identity filters, with their average rating attached
// in one batched query.
func (s *Service) SearchProfessionals(ctx context.Context, serviceID int64, q string) ([]ProfessionalListing, error) {
	pros, err := s.professionals.SearchVerified(ctx, serviceID, q)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(pros))
	for i, p := range pros {
		ids[i] = p.ID
	}
	ratings, err := s.reviews.AverageForProfessionals(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ProfessionalListing, len(pros))
	for i, p := range pros {
		out[i] = ProfessionalListing{Professional: p, AvgRating: ratings[p.ID]}
	}
	return out, nil
}

// Profile returns the public view of a professional: details, review history
// and the average rating. Blocked professionals are hidden.
func (s *Service) Profile(ctx context.Context, id int64) (*ProfessionalProfile, error) {
	prof, err := s.professionals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	if prof.AdminBlocked {
		return nil, ErrProfessionalNotFound
	}

	reviews, err := s.reviews.ListByProfessional(ctx, id)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageForProfessional(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProfessionalProfile{
		Professional: prof,
		Reviews:      reviews,
		AvgRating:    avg,
	}, nil
}
