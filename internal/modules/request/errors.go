package request

import "errors"

var (
	ErrNotFound                = errors.New("service request not found")
	ErrForbidden               = errors.New("forbidden")
	ErrAccountBlocked          = errors.New("account suspended by an administrator")
	ErrNotVerified             = errors.New("professional is not verified")
	ErrStateConflict           = errors.New("request is not in a state that allows this action")
	ErrInvalidAction           = errors.New("invalid action")
	ErrActiveRequestExists     = errors.New("an active request with this professional already exists")
	ErrProfessionalUnavailable = errors.New("professional is not available for booking")
)
