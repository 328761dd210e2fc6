//go:build unit

package clock_test

import (
	"testing"
	"time"

	"ticket-monarch/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("callbacks fire only when time reaches them, in order", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		var fired []string
		clk.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
		clk.AfterFunc(time.Second, func() { fired = append(fired, "first") })

		clk.Add(500 * time.Millisecond)
		assert.Empty(t, fired)
		assert.Equal(t, 2, clk.Pending())

		clk.Add(2 * time.Second)
		assert.Equal(t, []string{"first", "second"}, fired)
		assert.Equal(t, 0, clk.Pending())
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := false
		tm := clk.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, tm.Stop())
		assert.False(t, tm.Stop(), "second Stop reports nothing was pending")
		clk.Add(time.Minute)
		assert.False(t, fired)
	})

	t.Run("callbacks may schedule more work", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		count := 0
		clk.AfterFunc(time.Second, func() {
			count++
			clk.AfterFunc(time.Second, func() { count++ })
		})

		clk.Add(time.Second)
		assert.Equal(t, 1, count)
		clk.Add(time.Second)
		assert.Equal(t, 2, count)
	})

	t.Run("Set moves Now", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		later := start.Add(time.Hour)
		clk.Set(later)
		assert.Equal(t, later, clk.Now())
	})
}

func TestRealClock(t *testing.T) {
	clk := clock.NewRealClock()
	done := make(chan struct{})
	clk.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
	assert.WithinDuration(t, time.Now(), clk.Now(), time.Second)
}
