package dashboard

import (
	"context"
	"log"

	"gigdesk/internal/fanout"
	"gigdesk/internal/gigapi"
)

const recentGigCount = 5

type Service struct {
	clients GatewayFactory
}

func NewService(clients GatewayFactory) *Service {
	return &Service{clients: clients}
}

// Overview loads the three dashboard sections concurrently with settle-all
// semantics: a failed section is marked and the others still render. The
// call itself only fails when the context is cancelled.
func (s *Service) Overview(ctx context.Context, token string) (*Overview, error) {
	gateway := s.clients(token)

	var (
		stats  gigapi.Statistics
		recent gigapi.Page[gigapi.Gig]
		unread int
	)

	errs := fanout.All(ctx,
		func(ctx context.Context) error {
			var err error
			stats, err = gateway.Statistics(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			recent, err = gateway.Gigs(ctx, 0, recentGigCount)
			return err
		},
		func(ctx context.Context) error {
			var err error
			unread, err = gateway.UnreadCount(ctx)
			return err
		},
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	overview := &Overview{}

	if errs[0] != nil {
		log.Printf("dashboard: statistics failed: %v", errs[0])
		overview.Statistics.Error = "Failed to load statistics"
	} else {
		overview.Statistics.Loaded = true
		overview.Statistics.Statistics = stats
		overview.Statistics.CompletionRate = CompletionRate(stats)
	}

	if errs[1] != nil {
		log.Printf("dashboard: recent gigs failed: %v", errs[1])
		overview.RecentGigs.Error = "Failed to load recent gigs"
		overview.RecentGigs.Gigs = []gigapi.Gig{}
	} else {
		overview.RecentGigs.Loaded = true
		overview.RecentGigs.Gigs = recent.Content
		if overview.RecentGigs.Gigs == nil {
			overview.RecentGigs.Gigs = []gigapi.Gig{}
		}
	}

	if errs[2] != nil {
		log.Printf("dashboard: unread count failed: %v", errs[2])
		overview.Unread.Error = "Failed to load unread count"
	} else {
		overview.Unread.Loaded = true
		overview.Unread.Count = unread
	}

	return overview, nil
}

// CompletionRate is completed gigs over created gigs, guarded against a
// zero denominator for fresh accounts.
func CompletionRate(stats gigapi.Statistics) float64 {
	created := stats.GigsCreated
	if created < 1 {
		created = 1
	}
	return float64(stats.GigsCompleted) / float64(created)
}
