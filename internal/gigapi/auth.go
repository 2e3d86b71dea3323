package gigapi

import "context"

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the opaque session credential issued by the platform.
type AuthResponse struct {
	Token     string  `json:"token"`
	Organizer Profile `json:"organizer"`
}

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/api/auth/organizer/sign-up", req, &out)
	return out, err
}

func (c *Client) SignIn(ctx context.Context, req SignInRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/api/auth/organizer/sign-in", req, &out)
	return out, err
}
