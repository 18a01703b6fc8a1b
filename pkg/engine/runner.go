package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// InputSource supplies the key state for the next tick.
type InputSource interface {
	Poll() entity.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() entity.Input

// Poll implements InputSource.
func (f InputFunc) Poll() entity.Input {
	return f()
}

// Runner drives a Game at the configured tick rate: each tick polls input,
// updates and renders. Pausing takes effect between ticks, never during one.
type Runner struct {
	game     *Game
	input    InputSource
	renderer entity.Renderer
	paused   atomic.Bool

	// MaxTicks stops the loop after that many updates; zero runs until ctx ends.
	MaxTicks uint64
	// OnFrame, if set, sees every frame after it is rendered.
	OnFrame func(Frame)
}

// NewRunner creates a runner for game.
func NewRunner(game *Game, input InputSource, renderer entity.Renderer) *Runner {
	return &Runner{
		game:     game,
		input:    input,
		renderer: renderer,
	}
}

// Pause stops ticking from the next tick on.
func (r *Runner) Pause() { r.paused.Store(true) }

// Resume restarts ticking.
func (r *Runner) Resume() { r.paused.Store(false) }

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool { return r.paused.Load() }

// Step runs one tick if not paused and reports whether it did.
func (r *Runner) Step(ctx context.Context) bool {
	if r.Paused() {
		return false
	}
	frame := r.game.Update(ctx, r.input.Poll())
	r.game.Render(r.renderer)
	if r.OnFrame != nil {
		r.OnFrame(frame)
	}
	return true
}

// Run ticks until ctx is done or MaxTicks updates have run. It returns
// ctx.Err() when cancelled and nil when MaxTicks is reached.
func (r *Runner) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(r.game.Config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if r.Step(ctx) {
				ticks++
			}
			if r.MaxTicks > 0 && ticks >= r.MaxTicks {
				return nil
			}
		}
	}
}
