package profile

import (
	"context"
	"strings"

	"gigdesk/internal/gigapi"
)

type Service struct {
	clients GatewayFactory
}

func NewService(clients GatewayFactory) *Service {
	return &Service{clients: clients}
}

func (s *Service) Get(ctx context.Context, token string) (gigapi.Profile, error) {
	return s.clients(token).Profile(ctx)
}

// Update pushes the full editable field set. The platform treats the payload
// as the new state, so the handler sends every field, last write wins.
func (s *Service) Update(ctx context.Context, token string, req UpdateRequest) (gigapi.Profile, error) {
	if strings.TrimSpace(req.Name) == "" {
		return gigapi.Profile{}, ErrValidation
	}

	return s.clients(token).UpdateProfile(ctx, gigapi.UpdateProfileRequest{
		Name:     strings.TrimSpace(req.Name),
		Bio:      req.Bio,
		Location: req.Location,
		Phone:    req.Phone,
		Company:  req.Company,
	})
}

func (s *Service) Statistics(ctx context.Context, token string) (gigapi.Statistics, error) {
	return s.clients(token).Statistics(ctx)
}

func (s *Service) Performer(ctx context.Context, token string, performerID int64) (gigapi.Performer, error) {
	performer, err := s.clients(token).Performer(ctx, performerID)
	if err != nil {
		if gigapi.IsNotFound(err) {
			return gigapi.Performer{}, ErrNotFound
		}
		return gigapi.Performer{}, err
	}
	return performer, nil
}
