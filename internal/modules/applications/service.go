package applications

import (
	"context"
	"log"
	"sort"
	"strings"

	"gigdesk/internal/fanout"
	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
)

const (
	gigPageSize         = 50
	maxGigPages         = 20
	applicationPageSize = 100
)

var applicationStatuses = []string{
	gigapi.ApplicationStatusPending,
	gigapi.ApplicationStatusAccepted,
	gigapi.ApplicationStatusRejected,
}

type Service struct {
	clients GatewayFactory
	actions *inflight.Map
}

func NewService(clients GatewayFactory, actions *inflight.Map) *Service {
	return &Service{clients: clients, actions: actions}
}

// ListAll aggregates applications across every gig of the organizer: it
// pages through the gig list, fans out one applications request per gig with
// settle-all semantics, and tolerates individual fetch failures. Display
// order is newest application first, established by an explicit sort, not
// arrival order.
func (s *Service) ListAll(ctx context.Context, token string, q ListQuery) (*ApplicationList, error) {
	gateway := s.clients(token)

	gigs, err := s.allGigs(ctx, gateway)
	if err != nil {
		return nil, err
	}

	branches := make([]func(context.Context) ([]gigapi.Application, error), len(gigs))
	for i, gig := range gigs {
		gig := gig
		branches[i] = func(ctx context.Context) ([]gigapi.Application, error) {
			page, err := gateway.GigApplications(ctx, gig.ID, 0, applicationPageSize)
			if err != nil {
				return nil, err
			}
			apps := page.Content
			for j := range apps {
				if apps[j].GigTitle == "" {
					apps[j].GigTitle = gig.Title
				}
			}
			return apps, nil
		}
	}

	merged := make([]gigapi.Application, 0)
	var failed []int64
	for i, result := range fanout.Settle(ctx, branches...) {
		if result.Err != nil {
			log.Printf("applications: fetch for gig=%d failed: %v", gigs[i].ID, result.Err)
			failed = append(failed, gigs[i].ID)
			continue
		}
		merged = append(merged, result.Value...)
	}

	// canonical UTC ISO strings sort chronologically as plain strings
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AppliedAt > merged[j].AppliedAt
	})

	filtered := Filter(merged, q.Search, q.Status)
	return &ApplicationList{
		Applications: filtered,
		Buckets:      Partition(filtered),
		FailedGigs:   failed,
	}, nil
}

// ListForGig returns one gig's applications, filtered and partitioned.
func (s *Service) ListForGig(ctx context.Context, token string, gigID int64, q ListQuery) (*ApplicationList, error) {
	page, err := s.clients(token).GigApplications(ctx, gigID, 0, applicationPageSize)
	if err != nil {
		if gigapi.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	filtered := Filter(page.Content, q.Search, q.Status)
	return &ApplicationList{
		Applications: filtered,
		Buckets:      Partition(filtered),
	}, nil
}

// Accept accepts an application and refetches the gig with all of its
// applications. Accept has cross-entity side effects (the platform rejects
// competing applications and moves the gig toward BOOKED), so correctness
// comes from the refetch, never from patching local state.
func (s *Service) Accept(ctx context.Context, token string, gigID, applicationID int64) (*Decision, error) {
	return s.decide(ctx, token, gigID, applicationID, func(ctx context.Context, g Gateway) error {
		return g.AcceptApplication(ctx, gigID, applicationID)
	})
}

// Reject rejects an application. The reason is mandatory and validated
// before any network call.
func (s *Service) Reject(ctx context.Context, token string, gigID, applicationID int64, reason string) (*Decision, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}
	return s.decide(ctx, token, gigID, applicationID, func(ctx context.Context, g Gateway) error {
		return g.RejectApplication(ctx, gigID, applicationID, reason)
	})
}

// decide serializes accept and reject on one shared per-application key:
// while either decision is in flight the other is refused, other
// applications stay actionable.
func (s *Service) decide(ctx context.Context, token string, gigID, applicationID int64, action func(context.Context, Gateway) error) (*Decision, error) {
	key := inflight.Key("application", applicationID)
	if !s.actions.TryAcquire(key) {
		return nil, ErrActionInFlight
	}
	defer s.actions.Release(key)

	gateway := s.clients(token)
	if err := action(ctx, gateway); err != nil {
		if gigapi.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	gig, err := gateway.Gig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	page, err := gateway.GigApplications(ctx, gigID, 0, applicationPageSize)
	if err != nil {
		return nil, err
	}

	decision := &Decision{Gig: gig, Applications: page.Content}
	if decision.Applications == nil {
		decision.Applications = []gigapi.Application{}
	}
	return decision, nil
}

func (s *Service) allGigs(ctx context.Context, gateway Gateway) ([]gigapi.Gig, error) {
	var gigs []gigapi.Gig
	for page := 0; page < maxGigPages; page++ {
		p, err := gateway.Gigs(ctx, page, gigPageSize)
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, p.Content...)
		if p.Last || len(p.Content) == 0 {
			break
		}
	}
	return gigs, nil
}

// Filter applies the shared list predicate: case-insensitive substring
// search over performer name variants, gig title and message, plus an exact
// status match ("all" or empty short-circuits). Pure function of its inputs.
func Filter(list []gigapi.Application, search, status string) []gigapi.Application {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)
	all := status == "" || strings.EqualFold(status, "all")

	out := make([]gigapi.Application, 0, len(list))
	for _, app := range list {
		if !all && !strings.EqualFold(app.Status, status) {
			continue
		}
		if search != "" && !matches(app, search) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matches(app gigapi.Application, search string) bool {
	for _, field := range []string{app.PerformerName, app.ArtistName, app.GigTitle, app.Message} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Partition groups applications into the disjoint pending/accepted/rejected
// buckets. Every application lands in exactly one bucket.
func Partition(list []gigapi.Application) map[string][]gigapi.Application {
	buckets := make(map[string][]gigapi.Application, len(applicationStatuses))
	for _, status := range applicationStatuses {
		buckets[status] = []gigapi.Application{}
	}
	for _, app := range list {
		buckets[app.Status] = append(buckets[app.Status], app)
	}
	return buckets
}
