package profile

import (
	"context"

	"gigdesk/internal/gigapi"
)

// Gateway is the slice of the platform client this module consumes.
type Gateway interface {
	Profile(ctx context.Context) (gigapi.Profile, error)
	UpdateProfile(ctx context.Context, req gigapi.UpdateProfileRequest) (gigapi.Profile, error)
	Statistics(ctx context.Context) (gigapi.Statistics, error)
	Performer(ctx context.Context, performerID int64) (gigapi.Performer, error)
}

// GatewayFactory builds an authorized gateway for one request's token.
type GatewayFactory func(token string) Gateway
