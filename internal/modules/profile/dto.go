package profile

import "gigdesk/internal/gigapi"

// UpdateRequest carries the editable profile fields. Name stays mandatory,
// everything else may be cleared by sending an empty value.
type UpdateRequest struct {
	Name     string          `json:"name" binding:"required"`
	Bio      string          `json:"bio"`
	Location string          `json:"location"`
	Phone    string          `json:"phone"`
	Company  *gigapi.Company `json:"company"`
}
