package admin

import "errors"

var (
	ErrServiceTypeTaken      = errors.New("a service with this name already exists")
	ErrServiceNotFound       = errors.New("service not found")
	ErrServiceInUse          = errors.New("service has professionals assigned and cannot be deleted")
	ErrProfessionalNotFound  = errors.New("professional not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrCannotBlockAdmin      = errors.New("admin accounts cannot be blocked")
	ErrInvalidSearchCategory = errors.New("unknown search category")
)
