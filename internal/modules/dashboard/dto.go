package dashboard

import "gigdesk/internal/gigapi"

// Section is one independently loaded slice of the dashboard. A failed
// section reports its error message and leaves the rest intact.
type Section struct {
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

type StatisticsSection struct {
	Section
	Statistics     gigapi.Statistics `json:"statistics"`
	CompletionRate float64           `json:"completionRate"`
}

type RecentGigsSection struct {
	Section
	Gigs []gigapi.Gig `json:"gigs"`
}

type UnreadSection struct {
	Section
	Count int `json:"count"`
}

// Overview is the aggregated dashboard payload.
type Overview struct {
	Statistics StatisticsSection `json:"statistics"`
	RecentGigs RecentGigsSection `json:"recentGigs"`
	Unread     UnreadSection     `json:"unread"`
}
