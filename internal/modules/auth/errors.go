package auth

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account deactivated")
	ErrAccountBlocked     = errors.New("account suspended by an administrator")
	ErrServiceRequired    = errors.New("professional registration requires a service")
)
