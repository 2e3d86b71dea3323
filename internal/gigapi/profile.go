package gigapi

import (
	"context"
	"fmt"
)

type UpdateProfileRequest struct {
	Name     string   `json:"name,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	Location string   `json:"location,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.get(ctx, "/api/organizer/profile", nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Profile, error) {
	var out Profile
	err := c.put(ctx, "/api/organizer/profile", req, &out)
	return out, err
}

func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	var out Statistics
	err := c.get(ctx, "/api/organizer/profile/statistics", nil, &out)
	return out, err
}

func (c *Client) Performer(ctx context.Context, performerID int64) (Performer, error) {
	var out Performer
	err := c.get(ctx, fmt.Sprintf("/api/organizer/performers/%d", performerID), nil, &out)
	return out, err
}
