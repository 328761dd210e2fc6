//go:build unit || e2e

package builder

import (
	"time"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
)

// FormBuilder yields a checkout form that passes validation at any date before 2099.
type FormBuilder struct {
	Values checkout.FormValues
}

func NewFormBuilder() *FormBuilder {
	return &FormBuilder{Values: checkout.FormValues{
		FullName:       "Jane Doe",
		CardNumber:     "4111 1111 1111 1111",
		CardExpiry:     "12/99",
		CardCVV:        "123",
		BillingAddress: "1 Main St",
		City:           "Springfield",
		State:          "Illinois",
		Country:        checkout.DefaultCountry,
		ZipCode:        "62701",
	}}
}

func (b *FormBuilder) With(field checkout.Field, value string) *FormBuilder {
	_ = b.Values.Set(field, value)
	return b
}

func (b *FormBuilder) Build() checkout.FormValues {
	return b.Values
}

// Entries returns the form as field/value pairs in form order, for replaying keystrokes.
func (b *FormBuilder) Entries() []FieldEntry {
	out := make([]FieldEntry, 0, len(checkout.Fields()))
	for _, f := range checkout.Fields() {
		v, _ := b.Values.Get(f)
		out = append(out, FieldEntry{Field: f, Value: v})
	}
	return out
}

type FieldEntry struct {
	Field checkout.Field
	Value string
}

type SelectionBuilder struct {
	Concert booking.Concert
	Section booking.Section
}

func NewSelectionBuilder() *SelectionBuilder {
	return &SelectionBuilder{
		Concert: booking.Concert{
			ID:         1,
			Name:       "Taylor Swift",
			Date:       "Dec 15, 2025",
			Venue:      "Madison Square Garden",
			City:       "New York, NY",
			PriceCents: 15000,
		},
		Section: booking.Section{Number: "101", PriceCents: 7500},
	}
}

func (b *SelectionBuilder) With(mutate func(*SelectionBuilder)) *SelectionBuilder {
	mutate(b)
	return b
}

func (b *SelectionBuilder) Build() booking.Selection {
	return booking.NewSelection(b.Concert, b.Section)
}

func (b *SelectionBuilder) BuildOrder(customer checkout.FormValues, at time.Time) booking.OrderDetails {
	return booking.NewOrderDetails(b.Build(), customer, at)
}
