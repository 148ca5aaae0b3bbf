package domain

import "time"

type RequestStatus string

const (
	StatusRequested RequestStatus = "REQUESTED"
	StatusAccepted  RequestStatus = "ACCEPTED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusClosed    RequestStatus = "CLOSED"
	StatusPaid      RequestStatus = "PAID"
)

// requestTransitions is the full lifecycle:
// REQUESTED -> ACCEPTED -> CLOSED -> PAID, with the rejection branch
// REQUESTED -> REJECTED -> REQUESTED (admin reassignment only).
// PAID is terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusRequested: {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusClosed},
	StatusRejected:  {StatusRequested},
	StatusClosed:    {StatusPaid},
	StatusPaid:      {},
}

func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// CanTransition reports whether moving from s to "to" is a legal lifecycle step.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ServiceRequest tracks one customer's engagement with one professional for
// one service. ProfessionalID stays nil until assignment.
type ServiceRequest struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	ServiceID        int64         `json:"service_id" gorm:"index;not null"`
	CustomerID       int64         `json:"customer_id" gorm:"index;not null"`
	ProfessionalID   *int64        `json:"professional_id,omitempty" gorm:"index"`
	ProposedPrice    float64       `json:"proposed_price"`
	DateOfRequest    time.Time     `json:"date_of_request" gorm:"not null"`
	DateOfCompletion *time.Time    `json:"date_of_completion,omitempty"`
	Status           RequestStatus `json:"status" gorm:"size:20;index;not null;default:REQUESTED"`
	Remarks          string        `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	Service      *Service      `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Customer     *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Professional *Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	Review       *Review       `json:"review,omitempty" gorm:"foreignKey:ServiceRequestID"`
}
