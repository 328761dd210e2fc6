//go:build unit

package response_test

import (
	"testing"

	"ticket-monarch/internal/domain/booking"
	resdto "ticket-monarch/internal/handler/dto/response"
	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSeatMap(t *testing.T) {
	m := &usecase.SeatMap{
		Concert: booking.Concert{
			ID:         1,
			Name:       "Taylor Swift",
			Date:       "Dec 15, 2025",
			Venue:      "Madison Square Garden",
			City:       "New York, NY",
			PriceCents: 15000,
		},
		Sections: []booking.Section{{Number: "101", PriceCents: 7500}},
	}

	got, err := resdto.FromSeatMap(m)

	require.NoError(t, err)
	assert.Equal(t, "Taylor Swift", got.Concert.Name)
	assert.Equal(t, "New York, NY • Madison Square Garden", got.Concert.Location)
	assert.Equal(t, int64(15000), got.Concert.PriceCents)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "101", got.Sections[0].Number)
	assert.Equal(t, int64(7500), got.Sections[0].PriceCents)
}

func TestFromOrdersResult(t *testing.T) {
	orders := []backend.Order{
		{ID: 1, CustomerName: "Jane", Email: "jane@example.com", ProductName: "Floor", Quantity: 2, Price: 10, Total: 20},
		{ID: 2, CustomerName: "John", Email: "john@example.com", ProductName: "Balcony", Quantity: 1, Price: 5, Total: 5},
	}

	got, err := resdto.FromOrdersResult(backend.OrdersResult{Success: true, Orders: orders})

	require.NoError(t, err)
	assert.Equal(t, 2, got.Count, "count falls back to the number of orders")
	want := []resdto.OrderResponse{
		{ID: 1, CustomerName: "Jane", Email: "jane@example.com", ProductName: "Floor", Quantity: 2, Price: 10, Total: 20},
		{ID: 2, CustomerName: "John", Email: "john@example.com", ProductName: "Balcony", Quantity: 1, Price: 5, Total: 5},
	}
	if diff := cmp.Diff(want, got.Orders); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCreateOrderResult(t *testing.T) {
	t.Run("with order", func(t *testing.T) {
		got, err := resdto.FromCreateOrderResult(backend.CreateOrderResult{
			Success: true,
			Order:   &backend.Order{ID: 9, CustomerName: "Jane", Total: 59.97},
		})
		require.NoError(t, err)
		require.NotNil(t, got.Order)
		assert.Equal(t, int64(9), got.Order.ID)
		assert.InDelta(t, 59.97, got.Order.Total, 1e-9)
	})

	t.Run("rejected", func(t *testing.T) {
		got, err := resdto.FromCreateOrderResult(backend.CreateOrderResult{Error: "Database error"})
		require.NoError(t, err)
		assert.Nil(t, got.Order)
		assert.Equal(t, "Database error", got.Error)
	})
}
