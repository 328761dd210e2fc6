package request

import (
	"ticket-monarch/internal/domain/checkout"
)

type SelectSectionRequest struct {
	ConcertID int    `json:"concert_id" binding:"required,min=1"`
	Section   string `json:"section" binding:"required"`
}

// ChangeFieldRequest carries one keystroke. Value may be empty when the field is cleared.
type ChangeFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r ChangeFieldRequest) ToDomain() (checkout.Field, error) {
	return checkout.ParseField(r.Field)
}
