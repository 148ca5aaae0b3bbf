package review

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/policy"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	rv.ID = 1
	return args.Error(0)
}

func (m *mockReviewRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Review, error) {
	args := m.Called(ctx, professionalID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

type mockRequestReader struct {
	mock.Mock
}

func (m *mockRequestReader) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}

func newTestService() (*Service, *mockReviewRepo, *mockRequestReader) {
	reviews := new(mockReviewRepo)
	requests := new(mockRequestReader)
	return NewService(reviews, requests), reviews, requests
}

func closedRequest(customerID, professionalID int64) *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:             1,
		ServiceID:      3,
		CustomerID:     customerID,
		ProfessionalID: &professionalID,
		Status:         domain.StatusClosed,
	}
}

func customer(id int64) policy.Actor {
	return policy.Actor{Role: domain.RoleCustomer, CustomerID: id}
}

func TestService_Create(t *testing.T) {
	svc, reviews, requests := newTestService()

	requests.On("GetByID", mock.Anything, int64(1)).Return(closedRequest(2, 5), nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	rv, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 5, Remarks: "great"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), rv.CustomerID)
	assert.Equal(t, int64(5), rv.ProfessionalID)
	assert.Equal(t, int64(1), rv.ServiceRequestID)
	assert.Equal(t, 5, rv.Rating)
}

func TestService_Create_PaidRequest(t *testing.T) {
	svc, reviews, requests := newTestService()

	sr := closedRequest(2, 5)
	sr.Status = domain.StatusPaid
	requests.On("GetByID", mock.Anything, int64(1)).Return(sr, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 4})

	assert.NoError(t, err)
}

func TestService_Create_NotClosed(t *testing.T) {
	svc, _, requests := newTestService()

	sr := closedRequest(2, 5)
	sr.Status = domain.StatusAccepted
	requests.On("GetByID", mock.Anything, int64(1)).Return(sr, nil)

	_, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrNotClosed)
}

func TestService_Create_NotOwner(t *testing.T) {
	svc, _, requests := newTestService()

	requests.On("GetByID", mock.Anything, int64(1)).Return(closedRequest(2, 5), nil)

	_, err := svc.Create(context.Background(), customer(99), 1, CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_AlreadyReviewed(t *testing.T) {
	svc, _, requests := newTestService()

	sr := closedRequest(2, 5)
	sr.Review = &domain.Review{ID: 10, ServiceRequestID: 1}
	requests.On("GetByID", mock.Anything, int64(1)).Return(sr, nil)

	_, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_DuplicateRace(t *testing.T) {
	svc, reviews, requests := newTestService()

	requests.On("GetByID", mock.Anything, int64(1)).Return(closedRequest(2, 5), nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("constraint failed: UNIQUE constraint failed: reviews.service_request_id"))

	_, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_UnknownRequest(t *testing.T) {
	svc, _, requests := newTestService()

	requests.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), customer(2), 1, CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
