package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/clockwall/internal/state"
)

func TestStartTicker_FiresOncePerInterval(t *testing.T) {
	clk := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan struct{}, 10)
	done := StartTicker(ctx, clk, time.Second, func() { ticks <- struct{}{} })

	require.NoError(t, clk.BlockUntilContext(ctx, 1))
	for i := 0; i < 3; i++ {
		clk.Advance(time.Second)
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not delivered", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker goroutine did not exit after cancel")
	}
	assert.Empty(t, ticks)
}

func TestStartTicker_StopsOnCancel(t *testing.T) {
	clk := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := StartTicker(ctx, clk, time.Second, func() { calls.Add(1) })
	require.NoError(t, clk.BlockUntilContext(ctx, 1))

	cancel()
	<-done
	clk.Advance(5 * time.Second)

	assert.Equal(t, int32(0), calls.Load())
}

func TestStartTicker_DefaultsInterval(t *testing.T) {
	clk := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan struct{}, 1)
	done := StartTicker(ctx, clk, 0, func() { ticks <- struct{}{} })
	require.NoError(t, clk.BlockUntilContext(ctx, 1))

	clk.Advance(TickInterval - time.Millisecond)
	select {
	case <-ticks:
		t.Fatal("ticked before the default interval elapsed")
	case <-time.After(50 * time.Millisecond):
	}
	clk.Advance(time.Millisecond)
	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("tick not delivered at the default interval")
	}

	cancel()
	<-done
}

// The ticker drives the store through a single owner goroutine, the same way
// the UI loop does.
func TestStartTicker_AdvancesStoreThroughOwner(t *testing.T) {
	clk := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := state.New()
	start := time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := store.Add(state.Config{StartTime: start})

	msgs := make(chan struct{}, 4)
	done := StartTicker(ctx, clk, time.Second, func() { msgs <- struct{}{} })
	require.NoError(t, clk.BlockUntilContext(ctx, 1))

	for i := 0; i < 3; i++ {
		clk.Advance(time.Second)
		select {
		case <-msgs:
			store.AdvanceAllByOneSecond()
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not delivered", i+1)
		}
	}
	cancel()
	<-done

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, rec.ID, snap[0].ID)
	assert.True(t, snap[0].StartTime.Equal(start.Add(3*time.Second)), "got %v", snap[0].StartTime)
}
