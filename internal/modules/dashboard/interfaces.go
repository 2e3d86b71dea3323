package dashboard

import (
	"context"

	"gigdesk/internal/gigapi"
)

// Gateway is the slice of the platform client this module consumes.
type Gateway interface {
	Statistics(ctx context.Context) (gigapi.Statistics, error)
	Gigs(ctx context.Context, page, size int) (gigapi.Page[gigapi.Gig], error)
	UnreadCount(ctx context.Context) (int, error)
}

// GatewayFactory builds an authorized gateway for one request's token.
type GatewayFactory func(token string) Gateway
