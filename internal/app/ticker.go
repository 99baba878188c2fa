package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// TickInterval is how often every clock advances.
const TickInterval = time.Second

// StartTicker launches a goroutine that calls onTick once per interval until
// ctx is cancelled. It returns a channel that is closed when the goroutine
// has exited.
//
// The ticker never touches the store itself. In the TUI, onTick posts a
// message to the Bubble Tea loop, which owns the store and performs the
// advance there.
func StartTicker(ctx context.Context, clk clockwork.Clock, interval time.Duration, onTick func()) <-chan struct{} {
	if interval <= 0 {
		interval = TickInterval
	}
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	done := make(chan struct{})
	ticker := clk.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				onTick()
			}
		}
	}()
	return done
}
