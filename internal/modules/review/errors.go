package review

import "errors"

var (
	ErrRequestNotFound = errors.New("service request not found")
	ErrForbidden       = errors.New("forbidden")
	ErrAccountBlocked  = errors.New("account suspended by an administrator")
	ErrNotClosed       = errors.New("request must be completed before it can be reviewed")
	ErrAlreadyReviewed = errors.New("this request has already been reviewed")
	ErrNotAssigned     = errors.New("request has no assigned professional")
)
