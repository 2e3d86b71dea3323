package gigapi

import (
	"context"
	"fmt"
)

type cancelGigRequest struct {
	Reason string `json:"reason"`
}

func (c *Client) Gigs(ctx context.Context, page, size int) (Page[Gig], error) {
	var out Page[Gig]
	err := c.get(ctx, "/api/organizer/gigs", pageQuery(page, size), &out)
	return out, err
}

func (c *Client) Gig(ctx context.Context, gigID int64) (Gig, error) {
	var out Gig
	err := c.get(ctx, fmt.Sprintf("/api/organizer/gigs/%d", gigID), nil, &out)
	return out, err
}

func (c *Client) CreateGig(ctx context.Context, req GigRequest) (Gig, error) {
	var out Gig
	err := c.post(ctx, "/api/organizer/gigs", req, &out)
	return out, err
}

func (c *Client) UpdateGig(ctx context.Context, gigID int64, req GigRequest) (Gig, error) {
	var out Gig
	err := c.put(ctx, fmt.Sprintf("/api/organizer/gigs/%d", gigID), req, &out)
	return out, err
}

func (c *Client) PublishGig(ctx context.Context, gigID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/gigs/%d/publish", gigID), nil, nil)
}

func (c *Client) CompleteGig(ctx context.Context, gigID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/gigs/%d/complete", gigID), nil, nil)
}

func (c *Client) CancelGig(ctx context.Context, gigID int64, reason string) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/gigs/%d/cancel", gigID), cancelGigRequest{Reason: reason}, nil)
}
