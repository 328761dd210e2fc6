package response

import (
	"strings"
	"time"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
	"ticket-monarch/internal/usecase"
	"ticket-monarch/internal/usecase/checkoutform"
)

const (
	CheckoutPath     = "/checkout"
	ConfirmationPath = "/confirmation"
	HomePath         = "/"
)

type SelectionResponse struct {
	Selection booking.Selection `json:"selection"`
	Redirect  string            `json:"redirect"`
}

type SummaryResponse struct {
	ConcertName string `json:"concertName"`
	Section     string `json:"section"`
	Count       int    `json:"count"`
	TicketPrice string `json:"ticketPrice"`
	Total       string `json:"total"`
	TotalCents  int64  `json:"totalCents"`
}

type SubmissionStateResponse struct {
	Phase   string `json:"phase"`
	Message string `json:"message,omitempty"`
}

type CheckoutFormResponse struct {
	Values     checkout.FormValues     `json:"values"`
	Errors     map[string]string       `json:"errors"`
	State      SubmissionStateResponse `json:"state"`
	Submitting bool                    `json:"submitting"`
}

type CheckoutPageResponse struct {
	Summary SummaryResponse      `json:"summary"`
	Form    CheckoutFormResponse `json:"form"`
	States  []string             `json:"states"`
}

type SubmitResponse struct {
	Form     CheckoutFormResponse `json:"form"`
	Redirect string               `json:"redirect,omitempty"`
}

type ConfirmationResponse struct {
	Title        string          `json:"title"`
	Message      string          `json:"message"`
	Summary      SummaryResponse `json:"summary"`
	CustomerName string          `json:"customerName"`
	CardLast4    string          `json:"cardLast4,omitempty"`
	OrderDate    time.Time       `json:"orderDate"`
}

func FromSelection(sel *booking.Selection) SelectionResponse {
	return SelectionResponse{Selection: *sel, Redirect: CheckoutPath}
}

func FromSummary(s booking.Summary) SummaryResponse {
	return SummaryResponse{
		ConcertName: s.ConcertName,
		Section:     s.Section,
		Count:       s.Count,
		TicketPrice: s.TicketPrice.String(),
		Total:       s.Total.String(),
		TotalCents:  s.Total.Cents(),
	}
}

func FromSnapshot(s checkoutform.Snapshot) CheckoutFormResponse {
	errs := make(map[string]string, len(s.Errors))
	for f, msg := range s.Errors {
		errs[f.String()] = msg
	}
	return CheckoutFormResponse{
		Values: s.Values,
		Errors: errs,
		State: SubmissionStateResponse{
			Phase:   s.State.Phase.String(),
			Message: s.State.Message,
		},
		Submitting: s.State.IsSubmitting(),
	}
}

func FromCheckoutPage(p *usecase.CheckoutPage) CheckoutPageResponse {
	return CheckoutPageResponse{
		Summary: FromSummary(p.Summary),
		Form:    FromSnapshot(p.Form),
		States:  checkout.States(),
	}
}

// FromSubmit points the client at the confirmation page once the order was handed off.
func FromSubmit(s *checkoutform.Snapshot) SubmitResponse {
	res := SubmitResponse{Form: FromSnapshot(*s)}
	if s.State.Phase == checkout.PhaseSucceeded {
		res.Redirect = ConfirmationPath
	}
	return res
}

func FromOrderDetails(o *booking.OrderDetails) ConfirmationResponse {
	return ConfirmationResponse{
		Title:        "Congratulations!",
		Message:      "Your tickets have been purchased they will be in your email shortly",
		Summary:      FromSummary(o.Summary()),
		CustomerName: o.CustomerInfo.FullName,
		CardLast4:    lastDigits(o.CustomerInfo.CardNumber, 4),
		OrderDate:    o.OrderDate,
	}
}

func lastDigits(card string, n int) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, card)
	if len(digits) < n {
		return ""
	}
	return digits[len(digits)-n:]
}
