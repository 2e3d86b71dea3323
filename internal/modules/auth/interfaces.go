package auth

import (
	"context"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/session"
)

// PlatformAuth is the slice of the platform gateway this module consumes.
type PlatformAuth interface {
	SignUp(ctx context.Context, req gigapi.SignUpRequest) (gigapi.AuthResponse, error)
	SignIn(ctx context.Context, req gigapi.SignInRequest) (gigapi.AuthResponse, error)
}

// SessionStore persists issued platform credentials.
type SessionStore interface {
	Create(ctx context.Context, token, email string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}
