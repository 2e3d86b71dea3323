package applications

import "gigdesk/internal/gigapi"

type ListQuery struct {
	Search string `form:"q"`
	Status string `form:"status"`
}

// ApplicationList is the aggregated, filtered cross-gig view with the
// disjoint status buckets the UI renders as tabs.
type ApplicationList struct {
	Applications []gigapi.Application            `json:"applications"`
	Buckets      map[string][]gigapi.Application `json:"buckets"`
	// FailedGigs lists gigs whose applications could not be fetched; their
	// slice of the view is simply missing, the rest renders.
	FailedGigs []int64 `json:"failedGigs,omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// Decision is the refetched state after accept/reject: the gig (whose status
// may have moved) plus all of its applications, including the ones the
// platform implicitly rejected.
type Decision struct {
	Gig          gigapi.Gig           `json:"gig"`
	Applications []gigapi.Application `json:"applications"`
}
