package game

import (
	"context"
	"time"

	"github.com/vovakirdan/galaxy-raid/internal/core"
)

// Clock paces the simulation loop.
type Clock interface {
	// Wait blocks until the next tick is due or ctx is done.
	Wait(ctx context.Context) error
}

// TickerClock fires at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing tickRate times per second.
func NewTickerClock(tickRate int) *TickerClock {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// Unpaced never waits. Used by simulations and tests.
type Unpaced struct{}

// Wait returns immediately unless ctx is done.
func (Unpaced) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Run drives s until it ends. Each iteration waits for the clock, drains
// the input source, steps the session and renders the frame. When the swarm
// escapes the final frame and the end screen are rendered and Run keeps
// polling until a Dismiss or QuitRequested arrives. A quit returns without
// rendering anything further.
//
// Cancelling ctx is treated as a quit; the result is returned together with
// ctx.Err().
func Run(ctx context.Context, s *Session, in InputSource, out Renderer, clock Clock) (StepResult, error) {
	for {
		if err := clock.Wait(ctx); err != nil {
			s.Quit()
			return s.result(0), err
		}

		res := s.Step(in.Poll())
		if res.Phase == PhaseRunning {
			out.RenderFrame(s.Frame())
			continue
		}
		if res.Reason == EndQuit {
			return res, nil
		}

		out.RenderFrame(s.Frame())
		out.RenderEndScreen(res.Score)
		return res, awaitDismiss(ctx, in, clock)
	}
}

func awaitDismiss(ctx context.Context, in InputSource, clock Clock) error {
	for {
		if err := clock.Wait(ctx); err != nil {
			return err
		}
		for _, c := range in.Poll() {
			if c == core.CommandDismiss || c == core.CommandQuitRequested {
				return nil
			}
		}
	}
}
