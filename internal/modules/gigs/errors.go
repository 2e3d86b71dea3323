package gigs

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrDeadlineAfterEvent = errors.New("application deadline must precede event date")
	ErrReasonRequired     = errors.New("a reason is required")
	ErrActionInFlight     = errors.New("another action for this gig is still running")
	ErrNotFound           = errors.New("gig not found")
)
