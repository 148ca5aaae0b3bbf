package admin

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

// Service holds the moderation operations: the catalog CRUD, professional
// verification, account blocking and the dashboard aggregates.
type Service struct {
	services      ServiceRepository
	professionals ProfessionalRepository
	customers     CustomerRepository
	users         UserReader
	requests      RequestStats
	reviews       ReviewStats
}

func NewService(
	services ServiceRepository,
	professionals ProfessionalRepository,
	customers CustomerRepository,
	users UserReader,
	requests RequestStats,
	reviews ReviewStats,
) *Service {
	return &Service{
		services:      services,
		professionals: professionals,
		customers:     customers,
		users:         users,
		requests:      requests,
		reviews:       reviews,
	}
}

func (s *Service) CreateService(ctx context.Context, payload ServicePayload) (*domain.Service, error) {
	if _, err := s.services.GetByType(ctx, payload.ServiceType); err == nil {
		return nil, ErrServiceTypeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc := &domain.Service{
		ServiceType: payload.ServiceType,
		Description: payload.Description,
		BasePrice:   payload.BasePrice,
		ImageURL:    payload.ImageURL,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, payload ServicePayload) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if existing, err := s.services.GetByType(ctx, payload.ServiceType); err == nil {
		if existing.ID != id {
			return nil, ErrServiceTypeTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc.ServiceType = payload.ServiceType
	svc.Description = payload.Description
	svc.BasePrice = payload.BasePrice
	svc.ImageURL = payload.ImageURL
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService refuses to delete a service that still has professionals
// assigned; their profiles would dangle otherwise.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	cnt, err := s.professionals.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrServiceInUse
	}
	return s.services.Delete(ctx, id)
}

// ApproveProfessional marks the professional as verified, clearing any
// earlier rejection.
func (s *Service) ApproveProfessional(ctx context.Context, id int64) error {
	if _, err := s.professionals.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessionalNotFound
		}
		return err
	}
	return s.professionals.SetVerification(ctx, id, true, false)
}

func (s *Service) RejectProfessional(ctx context.Context, id int64) error {
	if _, err := s.professionals.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessionalNotFound
		}
		return err
	}
	return s.professionals.SetVerification(ctx, id, false, true)
}

// SetUserBlocked blocks or unblocks the role profile behind a user account.
// The flag lands on the customer or professional row according to the user's
// role; the profile gates then deny the user on their next request.
func (s *Service) SetUserBlocked(ctx context.Context, userID int64, blocked bool) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	switch user.Role {
	case domain.RoleCustomer:
		customer, err := s.customers.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return s.customers.SetBlocked(ctx, customer.ID, blocked)
	case domain.RoleProfessional:
		prof, err := s.professionals.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return s.professionals.SetBlocked(ctx, prof.ID, blocked)
	default:
		return ErrCannotBlockAdmin
	}
}

// Search runs the admin identity search over one account category.
func (s *Service) Search(ctx context.Context, category, q string) (*SearchResult, error) {
	switch category {
	case "customer":
		customers, err := s.customers.SearchIdentity(ctx, q)
		if err != nil {
			return nil, err
		}
		return &SearchResult{Customers: customers}, nil
	case "professional":
		pros, err := s.professionals.SearchIdentity(ctx, q)
		if err != nil {
			return nil, err
		}
		return &SearchResult{Professionals: pros}, nil
	default:
		return nil, ErrInvalidSearchCategory
	}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	pros, err := s.professionals.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.Professional, 0)
	for _, p := range pros {
		if !p.IsVerified && !p.VerificationFailed {
			pending = append(pending, p)
		}
	}

	active, err := s.requests.ListByStatuses(ctx, []domain.RequestStatus{
		domain.StatusRequested, domain.StatusAccepted,
	})
	if err != nil {
		return nil, err
	}
	// rejected requests are the admin's reassignment queue
	rejected, err := s.requests.ListByStatuses(ctx, []domain.RequestStatus{domain.StatusRejected})
	if err != nil {
		return nil, err
	}
	counts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Services:             services,
		Professionals:        pros,
		PendingVerification:  pending,
		ActiveRequests:       active,
		RejectedRequests:     rejected,
		RequestCountByStatus: counts,
	}, nil
}

// Charts shapes the aggregates for the admin graphs: request counts per
// lifecycle state and the 1..5 rating histogram.
func (s *Service) Charts(ctx context.Context) (*ChartData, error) {
	statusCounts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	ratingCounts, err := s.reviews.CountByRating(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(statusCounts))
	for status := range statusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	out := &ChartData{}
	for _, status := range statuses {
		out.RequestsByStatus.Labels = append(out.RequestsByStatus.Labels, status)
		out.RequestsByStatus.Data = append(out.RequestsByStatus.Data, statusCounts[status])
	}
	for rating := 1; rating <= 5; rating++ {
		out.RatingsDistribution.Labels = append(out.RatingsDistribution.Labels, strconv.Itoa(rating))
		out.RatingsDistribution.Data = append(out.RatingsDistribution.Data, ratingCounts[rating])
	}
	return out, nil
}
