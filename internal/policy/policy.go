// Package policy is the single authorization gate for service-request
// mutations. Every guarded operation funnels through Evaluate, so the
// role / blocked / ownership / verification rules live in one place
// instead of being repeated per role handler.
package policy

import (
	"servicehub/internal/domain"
)

type Action string

const (
	ActionCreate    Action = "request.create"
	ActionEditPrice Action = "request.edit_price"
	ActionAccept    Action = "request.accept"
	ActionReject    Action = "request.reject"
	ActionClose     Action = "request.close"
	ActionPay       Action = "request.pay"
	ActionReview    Action = "request.review"
	ActionReassign  Action = "request.reassign"
)

// Actor describes who is attempting the action. CustomerID/ProfessionalID are
// zero when the actor has no profile of that kind.
type Actor struct {
	Role           domain.UserRole
	CustomerID     int64
	ProfessionalID int64
	Blocked        bool
	Verified       bool
}

type Decision struct {
	Allow  bool
	Reason string
}

const (
	ReasonRoleMismatch   = "role_mismatch"
	ReasonAccountBlocked = "account_blocked"
	ReasonNotOwner       = "not_owner"
	ReasonNotAssignee    = "not_assignee"
	ReasonNotVerified    = "not_verified"
)

// actionRoles declares which roles may attempt each action. Close is shared:
// the assigned professional marks the work done, or an admin steps in.
var actionRoles = map[Action][]domain.UserRole{
	ActionCreate:    {domain.RoleCustomer},
	ActionEditPrice: {domain.RoleCustomer},
	ActionAccept:    {domain.RoleProfessional},
	ActionReject:    {domain.RoleProfessional},
	ActionClose:     {domain.RoleProfessional, domain.RoleAdmin},
	ActionPay:       {domain.RoleCustomer},
	ActionReview:    {domain.RoleCustomer},
	ActionReassign:  {domain.RoleAdmin},
}

func allow() Decision             { return Decision{Allow: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Evaluate applies the gates in fixed order: role, blocked, ownership,
// verification. State legality belongs to the caller; ownership failures
// surface before any state is inspected.
func Evaluate(actor Actor, req *domain.ServiceRequest, action Action) Decision {
	if !roleAllowed(actor.Role, action) {
		return deny(ReasonRoleMismatch)
	}
	if actor.Role != domain.RoleAdmin && actor.Blocked {
		return deny(ReasonAccountBlocked)
	}

	if req != nil {
		switch actor.Role {
		case domain.RoleCustomer:
			if req.CustomerID != actor.CustomerID {
				return deny(ReasonNotOwner)
			}
		case domain.RoleProfessional:
			if req.ProfessionalID == nil || *req.ProfessionalID != actor.ProfessionalID {
				return deny(ReasonNotAssignee)
			}
		}
	}

	if action == ActionAccept && !actor.Verified {
		return deny(ReasonNotVerified)
	}

	return allow()
}

func roleAllowed(role domain.UserRole, action Action) bool {
	for _, r := range actionRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}
