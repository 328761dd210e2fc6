package response

import (
	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase"

	"github.com/jinzhu/copier"
)

type ConcertResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EventName    string `json:"eventName,omitempty"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	City         string `json:"city"`
	Location     string `json:"location"`
	Availability string `json:"availability,omitempty"`
	Image        string `json:"image,omitempty"`
	PriceCents   int64  `json:"priceCents"`
	Price        string `json:"price"`
}

type SectionResponse struct {
	Number     string `json:"number"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
}

type SeatMapResponse struct {
	Concert  ConcertResponse   `json:"concert"`
	Sections []SectionResponse `json:"sections"`
}

func FromConcert(c booking.Concert) (ConcertResponse, error) {
	var res ConcertResponse
	if err := copier.Copy(&res, &c); err != nil {
		return ConcertResponse{}, errs.Wrapf(err, "map concert %d", c.ID)
	}
	res.Location = c.Location()
	res.Price = formatCents(c.PriceCents)
	return res, nil
}

func FromConcerts(cs []booking.Concert) ([]ConcertResponse, error) {
	out := make([]ConcertResponse, 0, len(cs))
	for _, c := range cs {
		res, err := FromConcert(c)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func FromSeatMap(m *usecase.SeatMap) (SeatMapResponse, error) {
	concert, err := FromConcert(m.Concert)
	if err != nil {
		return SeatMapResponse{}, err
	}

	sections := make([]SectionResponse, 0, len(m.Sections))
	for _, s := range m.Sections {
		sections = append(sections, SectionResponse{
			Number:     s.Number,
			PriceCents: s.PriceCents,
			Price:      formatCents(s.PriceCents),
		})
	}
	return SeatMapResponse{
		Concert:  concert,
		Sections: sections,
	}, nil
}

func formatCents(cents int64) string {
	m, err := booking.NewMoney(cents)
	if err != nil {
		return ""
	}
	return m.String()
}
