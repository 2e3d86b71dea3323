package gigapi

import (
	"context"
	"fmt"
)

type rejectApplicationRequest struct {
	Reason string `json:"reason"`
}

func (c *Client) GigApplications(ctx context.Context, gigID int64, page, size int) (Page[Application], error) {
	var out Page[Application]
	err := c.get(ctx, fmt.Sprintf("/api/organizer/gigs/%d/applications", gigID), pageQuery(page, size), &out)
	return out, err
}

// AcceptApplication accepts one application. The platform implicitly rejects
// competing applications for the same gig; callers refetch to observe that.
func (c *Client) AcceptApplication(ctx context.Context, gigID, applicationID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/gigs/%d/applications/%d/accept", gigID, applicationID), nil, nil)
}

func (c *Client) RejectApplication(ctx context.Context, gigID, applicationID int64, reason string) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/gigs/%d/applications/%d/reject", gigID, applicationID),
		rejectApplicationRequest{Reason: reason}, nil)
}
