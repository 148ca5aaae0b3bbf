package catalog

import "errors"

var ErrProfessionalNotFound = errors.New("professional not found")
