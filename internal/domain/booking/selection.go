package booking

import (
	"time"

	"ticket-monarch/internal/domain/checkout"
)

type Seat struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Row     string `json:"row"`
	Seat    string `json:"seat"`
}

// Selection is handed from seat selection to checkout.
type Selection struct {
	Concert           Concert `json:"concert"`
	Seats             []Seat  `json:"seats"`
	SelectedSection   string  `json:"selectedSection"`
	TotalCents        int64   `json:"totalCents"`
	SectionPriceCents int64   `json:"sectionPriceCents"`
}

// NewSelection books a single seat in the chosen section at the section price.
func NewSelection(concert Concert, section Section) Selection {
	return Selection{
		Concert: concert,
		Seats: []Seat{{
			ID:      "section-" + section.Number,
			Section: section.Number,
			Row:     "1",
			Seat:    "1",
		}},
		SelectedSection:   section.Number,
		TotalCents:        section.PriceCents,
		SectionPriceCents: section.PriceCents,
	}
}

func (s Selection) Section() string {
	if s.SelectedSection != "" {
		return s.SelectedSection
	}
	if len(s.Seats) > 0 {
		return s.Seats[0].Section
	}
	return ""
}

// TicketPrice prefers the section price, then the selection total, then the concert base price.
func (s Selection) TicketPrice() Money {
	switch {
	case s.SectionPriceCents > 0:
		return Money{cents: s.SectionPriceCents}
	case s.TotalCents > 0:
		return Money{cents: s.TotalCents}
	case s.Concert.PriceCents > 0:
		return Money{cents: s.Concert.PriceCents}
	default:
		return Money{}
	}
}

func (s Selection) ConcertName() string {
	if s.Concert.Name == "" {
		return "Concert"
	}
	return s.Concert.Name
}

type Summary struct {
	ConcertName string `json:"concertName"`
	Section     string `json:"section"`
	TicketPrice Money  `json:"-"`
	Count       int    `json:"count"`
	Total       Money  `json:"-"`
}

func (s Selection) Summary() Summary {
	price := s.TicketPrice()
	count := len(s.Seats)
	if count == 0 {
		count = 1
	}
	return Summary{
		ConcertName: s.ConcertName(),
		Section:     s.Section(),
		TicketPrice: price,
		Count:       count,
		Total:       price.Times(count),
	}
}

// OrderDetails is handed from checkout to confirmation.
type OrderDetails struct {
	Selection
	CustomerInfo checkout.FormValues `json:"customerInfo"`
	OrderDate    time.Time           `json:"orderDate"`
}

func NewOrderDetails(sel Selection, customer checkout.FormValues, at time.Time) OrderDetails {
	seats := make([]Seat, len(sel.Seats))
	copy(seats, sel.Seats)
	sel.Seats = seats
	return OrderDetails{
		Selection:    sel,
		CustomerInfo: customer,
		OrderDate:    at.UTC(),
	}
}
