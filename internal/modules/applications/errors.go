package applications

import "errors"

var (
	ErrReasonRequired = errors.New("a rejection reason is required")
	ErrActionInFlight = errors.New("a decision for this application is still running")
	ErrNotFound       = errors.New("application not found")
)
