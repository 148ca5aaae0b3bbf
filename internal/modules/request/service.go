package request

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/policy"
)

// Service drives the request lifecycle. Every transition is authorized
// through policy.Evaluate first, then applied as a guarded UPDATE whose WHERE
// clause re-checks the source state, so an illegal or lost-race transition
// changes nothing.
type Service struct {
	requests      RequestRepository
	professionals ProfessionalReader
	ratings       RatingReader
}

func NewService(requests RequestRepository, professionals ProfessionalReader, ratings RatingReader) *Service {
	return &Service{
		requests:      requests,
		professionals: professionals,
		ratings:       ratings,
	}
}

// denyError maps a policy denial to the module's sentinel errors.
func denyError(d policy.Decision) error {
	switch d.Reason {
	case policy.ReasonAccountBlocked:
		return ErrAccountBlocked
	case policy.ReasonNotVerified:
		return ErrNotVerified
	default:
		return ErrForbidden
	}
}

// Create books a verified, non-blocked professional. A customer may hold at
// most one REQUESTED/ACCEPTED engagement per professional at a time.
func (s *Service) Create(ctx context.Context, actor policy.Actor, req CreateRequest) (*domain.ServiceRequest, error) {
	if d := policy.Evaluate(actor, nil, policy.ActionCreate); !d.Allow {
		return nil, denyError(d)
	}

	prof, err := s.professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !prof.IsVerified || prof.AdminBlocked {
		return nil, ErrProfessionalUnavailable
	}

	active, err := s.requests.HasActive(ctx, actor.CustomerID, prof.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrActiveRequestExists
	}

	serviceID := req.ServiceID
	if serviceID == 0 {
		serviceID = prof.ServiceID
	}

	sr := &domain.ServiceRequest{
		ServiceID:      serviceID,
		CustomerID:     actor.CustomerID,
		ProfessionalID: &prof.ID,
		ProposedPrice:  req.ProposedPrice,
		DateOfRequest:  time.Now(),
		Status:         domain.StatusRequested,
		Remarks:        req.Remarks,
	}
	if err := s.requests.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (s *Service) get(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	sr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sr, nil
}

// EditPrice updates the proposed price while the request is still pending.
func (s *Service) EditPrice(ctx context.Context, actor policy.Actor, id int64, price float64) (*domain.ServiceRequest, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := policy.Evaluate(actor, sr, policy.ActionEditPrice); !d.Allow {
		return nil, denyError(d)
	}

	ok, err := s.requests.UpdateFrom(ctx, id, domain.StatusRequested, map[string]any{
		"proposed_price": price,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateConflict
	}
	return s.get(ctx, id)
}

// Handle applies the professional's accept/reject decision to a pending
// request. Any other action string is rejected without a transition.
func (s *Service) Handle(ctx context.Context, actor policy.Actor, id int64, action string) (*domain.ServiceRequest, error) {
	var (
		act policy.Action
		to  domain.RequestStatus
	)
	switch action {
	case "accept":
		act, to = policy.ActionAccept, domain.StatusAccepted
	case "reject":
		act, to = policy.ActionReject, domain.StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := policy.Evaluate(actor, sr, act); !d.Allow {
		return nil, denyError(d)
	}

	ok, err := s.requests.UpdateFrom(ctx, id, domain.StatusRequested, map[string]any{
		"status": to,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateConflict
	}
	return s.get(ctx, id)
}

// Close marks an accepted request as completed, stamping the completion date.
// The assigned professional or an admin may close.
func (s *Service) Close(ctx context.Context, actor policy.Actor, id int64) (*domain.ServiceRequest, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := policy.Evaluate(actor, sr, policy.ActionClose); !d.Allow {
		return nil, denyError(d)
	}

	ok, err := s.requests.UpdateFrom(ctx, id, domain.StatusAccepted, map[string]any{
		"status":             domain.StatusClosed,
		"date_of_completion": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateConflict
	}
	return s.get(ctx, id)
}

// Pay settles a closed request. No re-payment once PAID.
func (s *Service) Pay(ctx context.Context, actor policy.Actor, id int64) (*domain.ServiceRequest, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := policy.Evaluate(actor, sr, policy.ActionPay); !d.Allow {
		return nil, denyError(d)
	}

	ok, err := s.requests.UpdateFrom(ctx, id, domain.StatusClosed, map[string]any{
		"status": domain.StatusPaid,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateConflict
	}
	return s.get(ctx, id)
}

// Reassign hands a rejected request to a new professional and restarts the
// lifecycle at REQUESTED.
func (s *Service) Reassign(ctx context.Context, actor policy.Actor, id int64, newProfessionalID int64) (*domain.ServiceRequest, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := policy.Evaluate(actor, sr, policy.ActionReassign); !d.Allow {
		return nil, denyError(d)
	}

	if _, err := s.professionals.GetByID(ctx, newProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.requests.UpdateFrom(ctx, id, domain.StatusRejected, map[string]any{
		"professional_id": newProfessionalID,
		"status":          domain.StatusRequested,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateConflict
	}
	return s.get(ctx, id)
}

func (s *Service) HistoryForCustomer(ctx context.Context, customerID int64) ([]domain.ServiceRequest, error) {
	return s.requests.ListByCustomer(ctx, customerID)
}

func (s *Service) IncomingForProfessional(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error) {
	return s.requests.ListIncoming(ctx, professionalID)
}

func (s *Service) HandledForProfessional(ctx context.Context, professionalID int64) ([]domain.ServiceRequest, error) {
	return s.requests.ListHandled(ctx, professionalID)
}

func (s *Service) SummaryForProfessional(ctx context.Context, professionalID int64) (*Summary, error) {
	out := &Summary{}

	var err error
	if out.Accepted, err = s.requests.CountByProfessionalAndStatus(ctx, professionalID, domain.StatusAccepted); err != nil {
		return nil, err
	}
	if out.Closed, err = s.requests.CountByProfessionalAndStatus(ctx, professionalID, domain.StatusClosed); err != nil {
		return nil, err
	}
	if out.Rejected, err = s.requests.CountByProfessionalAndStatus(ctx, professionalID, domain.StatusRejected); err != nil {
		return nil, err
	}

	avg, err := s.ratings.AverageForProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if avg != nil {
		out.AverageRating = *avg
	}
	return out, nil
}
