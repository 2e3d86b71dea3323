package applications

import (
	"context"

	"gigdesk/internal/gigapi"
)

// Gateway is the slice of the platform client this module consumes.
type Gateway interface {
	Gigs(ctx context.Context, page, size int) (gigapi.Page[gigapi.Gig], error)
	Gig(ctx context.Context, gigID int64) (gigapi.Gig, error)
	GigApplications(ctx context.Context, gigID int64, page, size int) (gigapi.Page[gigapi.Application], error)
	AcceptApplication(ctx context.Context, gigID, applicationID int64) error
	RejectApplication(ctx context.Context, gigID, applicationID int64, reason string) error
}

// GatewayFactory builds an authorized gateway for one request's token.
type GatewayFactory func(token string) Gateway
