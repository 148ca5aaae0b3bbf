package review

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/policy"
)

type Service struct {
	reviews  ReviewRepository
	requests RequestReader
}

func NewService(reviews ReviewRepository, requests RequestReader) *Service {
	return &Service{reviews: reviews, requests: requests}
}

// Create records the customer's rating for a completed request. Only the
// request's owner may review, only once, and only after the work was closed
// (CLOSED or PAID). The unique index on service_request_id backs the
// once-only rule under concurrent submissions.
func (s *Service) Create(ctx context.Context, actor policy.Actor, requestID int64, req CreateReviewRequest) (*domain.Review, error) {
	sr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if d := policy.Evaluate(actor, sr, policy.ActionReview); !d.Allow {
		if d.Reason == policy.ReasonAccountBlocked {
			return nil, ErrAccountBlocked
		}
		return nil, ErrForbidden
	}

	if sr.Status != domain.StatusClosed && sr.Status != domain.StatusPaid {
		return nil, ErrNotClosed
	}
	if sr.Review != nil {
		return nil, ErrAlreadyReviewed
	}
	if sr.ProfessionalID == nil {
		return nil, ErrNotAssigned
	}

	rv := &domain.Review{
		CustomerID:       sr.CustomerID,
		ProfessionalID:   *sr.ProfessionalID,
		ServiceID:        sr.ServiceID,
		ServiceRequestID: sr.ID,
		Rating:           req.Rating,
		Remarks:          req.Remarks,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListForProfessional(ctx context.Context, professionalID int64) ([]domain.Review, error) {
	return s.reviews.ListByProfessional(ctx, professionalID)
}

// isUniqueViolation detects a duplicate-key error from either backend:
// pgconn for postgres, string matching for the cgo-free sqlite driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
