package gigs

import "gigdesk/internal/gigapi"

type ListQuery struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Search string `form:"q"`
	Status string `form:"status"`
}

// GigList is one page of gigs after client-side filtering, plus the disjoint
// status buckets the UI renders as tabs.
type GigList struct {
	Gigs          []gigapi.Gig            `json:"gigs"`
	Buckets       map[string][]gigapi.Gig `json:"buckets"`
	TotalElements int64                   `json:"totalElements"`
	TotalPages    int                     `json:"totalPages"`
	Page          int                     `json:"page"`
	Size          int                     `json:"size"`
	Last          bool                    `json:"last"`
}

// GigDetail bundles a gig with its applications; lifecycle mutations return
// a freshly refetched detail so server-side side effects are reflected.
type GigDetail struct {
	Gig          gigapi.Gig           `json:"gig"`
	Applications []gigapi.Application `json:"applications"`
}

type GigInput struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Category            string   `json:"category" binding:"required"`
	Genres              []string `json:"genres"`
	Location            string   `json:"location" binding:"required"`
	EventDate           string   `json:"eventDate" binding:"required"`
	ApplicationDeadline string   `json:"applicationDeadline"`
	PriceAmount         int64    `json:"priceAmount" binding:"required"`
	Currency            string   `json:"currency" binding:"required"`
	PriceType           string   `json:"priceType" binding:"required"`
	PaymentMethod       string   `json:"paymentMethod" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
