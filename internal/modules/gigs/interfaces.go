package gigs

import (
	"context"

	"gigdesk/internal/gigapi"
)

// Gateway is the slice of the platform client this module consumes. A fresh
// authorized gateway is derived per request from the session token.
type Gateway interface {
	Gigs(ctx context.Context, page, size int) (gigapi.Page[gigapi.Gig], error)
	Gig(ctx context.Context, gigID int64) (gigapi.Gig, error)
	CreateGig(ctx context.Context, req gigapi.GigRequest) (gigapi.Gig, error)
	UpdateGig(ctx context.Context, gigID int64, req gigapi.GigRequest) (gigapi.Gig, error)
	PublishGig(ctx context.Context, gigID int64) error
	CompleteGig(ctx context.Context, gigID int64) error
	CancelGig(ctx context.Context, gigID int64, reason string) error
	GigApplications(ctx context.Context, gigID int64, page, size int) (gigapi.Page[gigapi.Application], error)
}

// GatewayFactory builds an authorized gateway for one request's token.
type GatewayFactory func(token string) Gateway
