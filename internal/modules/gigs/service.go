package gigs

import (
	"context"
	"strings"
	"time"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
	"gigdesk/internal/timeutil"
)

const (
	defaultPageSize     = 20
	maxPageSize         = 100
	applicationPageSize = 100
)

// gigStatuses in display order.
var gigStatuses = []string{
	gigapi.GigStatusDraft,
	gigapi.GigStatusOpen,
	gigapi.GigStatusBooked,
	gigapi.GigStatusCompleted,
	gigapi.GigStatusCancelled,
}

type Service struct {
	clients GatewayFactory
	actions *inflight.Map
	loc     *time.Location
}

func NewService(clients GatewayFactory, actions *inflight.Map) *Service {
	return &Service{clients: clients, actions: actions, loc: time.Local}
}

// WithLocation overrides the zone used to interpret bare datetime-local
// input. Tests pin it to a fixed zone.
func (s *Service) WithLocation(loc *time.Location) *Service {
	s.loc = loc
	return s
}

func (s *Service) List(ctx context.Context, token string, q ListQuery) (*GigList, error) {
	if q.Size <= 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}
	if q.Page < 0 {
		q.Page = 0
	}

	page, err := s.clients(token).Gigs(ctx, q.Page, q.Size)
	if err != nil {
		return nil, err
	}

	filtered := FilterGigs(page.Content, q.Search, q.Status)
	return &GigList{
		Gigs:          filtered,
		Buckets:       PartitionGigs(filtered),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Page:          page.Number,
		Size:          page.Size,
		Last:          page.Last,
	}, nil
}

func (s *Service) Get(ctx context.Context, token string, gigID int64) (*GigDetail, error) {
	return s.fetchDetail(ctx, s.clients(token), gigID)
}

func (s *Service) Create(ctx context.Context, token string, input GigInput) (*gigapi.Gig, error) {
	req, err := s.buildRequest(input)
	if err != nil {
		return nil, err
	}
	gig, err := s.clients(token).CreateGig(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (s *Service) Update(ctx context.Context, token string, gigID int64, input GigInput) (*gigapi.Gig, error) {
	req, err := s.buildRequest(input)
	if err != nil {
		return nil, err
	}
	gig, err := s.clients(token).UpdateGig(ctx, gigID, *req)
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// Publish moves a draft gig to OPEN and returns the refetched detail.
func (s *Service) Publish(ctx context.Context, token string, gigID int64) (*GigDetail, error) {
	return s.transition(ctx, token, gigID, func(ctx context.Context, g Gateway) error {
		return g.PublishGig(ctx, gigID)
	})
}

func (s *Service) Complete(ctx context.Context, token string, gigID int64) (*GigDetail, error) {
	return s.transition(ctx, token, gigID, func(ctx context.Context, g Gateway) error {
		return g.CompleteGig(ctx, gigID)
	})
}

func (s *Service) Cancel(ctx context.Context, token string, gigID int64, reason string) (*GigDetail, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}
	return s.transition(ctx, token, gigID, func(ctx context.Context, g Gateway) error {
		return g.CancelGig(ctx, gigID, reason)
	})
}

// transition serializes lifecycle actions per gig: a second action for the
// same gig is refused while the first is in flight, other gigs stay free.
// Success always refetches; lifecycle calls have cross-entity side effects
// (application auto-rejection, counters) that a local patch would miss.
func (s *Service) transition(ctx context.Context, token string, gigID int64, action func(context.Context, Gateway) error) (*GigDetail, error) {
	key := inflight.Key("gig", gigID)
	if !s.actions.TryAcquire(key) {
		return nil, ErrActionInFlight
	}
	defer s.actions.Release(key)

	gateway := s.clients(token)
	if err := action(ctx, gateway); err != nil {
		return nil, err
	}
	return s.fetchDetail(ctx, gateway, gigID)
}

func (s *Service) fetchDetail(ctx context.Context, gateway Gateway, gigID int64) (*GigDetail, error) {
	gig, err := gateway.Gig(ctx, gigID)
	if err != nil {
		if gigapi.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	apps, err := gateway.GigApplications(ctx, gigID, 0, applicationPageSize)
	if err != nil {
		return nil, err
	}

	detail := &GigDetail{Gig: gig, Applications: apps.Content}
	if detail.Applications == nil {
		detail.Applications = []gigapi.Application{}
	}
	return detail, nil
}

func (s *Service) buildRequest(input GigInput) (*gigapi.GigRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrValidation
	}
	if input.PriceAmount <= 0 {
		return nil, ErrValidation
	}

	// normalize to UTC ISO; unparseable values fall back to the raw string
	// and are left for the platform to judge
	eventDate := timeutil.NormalizeOrRaw(input.EventDate, s.loc)
	deadline := ""
	if strings.TrimSpace(input.ApplicationDeadline) != "" {
		deadline = timeutil.NormalizeOrRaw(input.ApplicationDeadline, s.loc)
	}

	if deadline != "" {
		d, dok := timeutil.ParseUTCISO(deadline, s.loc)
		e, eok := timeutil.ParseUTCISO(eventDate, s.loc)
		if dok && eok && !d.Before(e) {
			return nil, ErrDeadlineAfterEvent
		}
	}

	return &gigapi.GigRequest{
		Title:               input.Title,
		Description:         input.Description,
		Category:            input.Category,
		Genres:              input.Genres,
		Location:            input.Location,
		EventDate:           eventDate,
		ApplicationDeadline: deadline,
		PriceAmount:         input.PriceAmount,
		Currency:            input.Currency,
		PriceType:           input.PriceType,
		PaymentMethod:       input.PaymentMethod,
	}, nil
}

// FilterGigs applies the shared list predicate: case-insensitive substring
// search over display fields plus an exact status match. An empty or "all"
// status short-circuits the status check. Pure function of its inputs.
func FilterGigs(list []gigapi.Gig, search, status string) []gigapi.Gig {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)
	all := status == "" || strings.EqualFold(status, "all")

	out := make([]gigapi.Gig, 0, len(list))
	for _, gig := range list {
		if !all && !strings.EqualFold(gig.Status, status) {
			continue
		}
		if search != "" && !gigMatches(gig, search) {
			continue
		}
		out = append(out, gig)
	}
	return out
}

func gigMatches(gig gigapi.Gig, search string) bool {
	for _, field := range []string{gig.Title, gig.Description, gig.Category, gig.Location} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// PartitionGigs groups gigs into disjoint status buckets for tabbed display.
// Every gig lands in exactly one bucket; unknown statuses keep their own key.
func PartitionGigs(list []gigapi.Gig) map[string][]gigapi.Gig {
	buckets := make(map[string][]gigapi.Gig, len(gigStatuses))
	for _, status := range gigStatuses {
		buckets[status] = []gigapi.Gig{}
	}
	for _, gig := range list {
		buckets[gig.Status] = append(buckets[gig.Status], gig)
	}
	return buckets
}
