package auth

import (
	"context"
	"net/http"
	"strings"

	"gigdesk/internal/gigapi"
)

// Service exchanges organizer credentials for a platform bearer token and
// caches it in a local session. The token itself never reaches the browser.
type Service struct {
	platform PlatformAuth
	sessions SessionStore
}

type SignInResult struct {
	SessionID string
	Organizer gigapi.Profile
}

func NewService(platform PlatformAuth, sessions SessionStore) *Service {
	return &Service{platform: platform, sessions: sessions}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*SignInResult, error) {
	resp, err := s.platform.SignUp(ctx, gigapi.SignUpRequest{
		Name:     req.Name,
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if gigapi.IsStatus(err, http.StatusConflict) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return s.storeSession(ctx, resp)
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	resp, err := s.platform.SignIn(ctx, gigapi.SignInRequest{
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if gigapi.IsUnauthorized(err) || gigapi.IsStatus(err, http.StatusForbidden) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.storeSession(ctx, resp)
}

// SignOut destroys the local session. It works even when the platform is
// unreachable: the upstream token simply expires on its own.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) storeSession(ctx context.Context, resp gigapi.AuthResponse) (*SignInResult, error) {
	sess, err := s.sessions.Create(ctx, resp.Token, resp.Organizer.Email)
	if err != nil {
		return nil, err
	}
	return &SignInResult{SessionID: sess.ID, Organizer: resp.Organizer}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
