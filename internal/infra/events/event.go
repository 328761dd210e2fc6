// Package events publishes funnel analytics events to a message broker.
package events

import "time"

type Type string

const (
	TypePageView          Type = "page_view"
	TypeSectionSelected   Type = "section_selected"
	TypeCheckoutSubmitted Type = "checkout_submitted"
	TypeOrderConfirmed    Type = "order_confirmed"
	TypeReturnedHome      Type = "returned_home"
)

// FunnelEvent carries enough context for analytics consumers without
// exposing any customer or payment data.
type FunnelEvent struct {
	Type      Type      `json:"type"`
	Page      string    `json:"page,omitempty"`
	VisitorID string    `json:"visitor_id"`
	ConcertID int       `json:"concert_id,omitempty"`
	Section   string    `json:"section,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
