package engine

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/errors"
)

// Renderer is the output sink driven by the clock
type Renderer interface {
	// Render draws the board; called once at the start of every tick
	Render(snap Snapshot) error
	// GameOver prints the termination message with the final score
	GameOver(score int) error
}

// GameClock owns the GameState and advances it on a fixed tick
// Each tick: render, sleep to the tick boundary, drain the mailbox, step, replace, check termination
// The clock never waits on the input listener; it only observes the mailbox
type GameClock struct {
	mu    sync.RWMutex
	state GameState

	mailbox  *Mailbox
	renderer Renderer
	rng      RandSource
	router   *Router
	logger   zerolog.Logger

	timeProvider TimeProvider

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	running   atomic.Bool

	// Closed when Run returns, doubles as the game-over signal for the listener
	done     chan struct{}
	doneOnce sync.Once
}

// ClockOption configures a GameClock
type ClockOption func(*GameClock)

// WithLogger attaches a structured logger
func WithLogger(logger zerolog.Logger) ClockOption {
	return func(c *GameClock) {
		c.logger = logger
	}
}

// WithRand sets the random source used for food placement
func WithRand(rng RandSource) ClockOption {
	return func(c *GameClock) {
		c.rng = rng
	}
}

// WithTimeProvider overrides the time source for tick deadlines
func WithTimeProvider(tp TimeProvider) ClockOption {
	return func(c *GameClock) {
		c.timeProvider = tp
	}
}

// WithEventHandler registers a handler on the clock's event router
func WithEventHandler(h Handler) ClockOption {
	return func(c *GameClock) {
		c.router.Register(h)
	}
}

// NewGameClock creates a clock that owns state from now on
func NewGameClock(state GameState, mailbox *Mailbox, renderer Renderer, tickInterval time.Duration, opts ...ClockOption) *GameClock {
	c := &GameClock{
		state:        state,
		mailbox:      mailbox,
		renderer:     renderer,
		router:       NewRouter(),
		logger:       zerolog.Nop(),
		timeProvider: NewMonotonicTimeProvider(),
		tickInterval: tickInterval,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return c
}

// Done is closed once Run has returned, for any reason
func (c *GameClock) Done() <-chan struct{} {
	return c.done
}

// State returns the current game state; safe from any goroutine
func (c *GameClock) State() GameState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Ticks returns the number of completed transitions
func (c *GameClock) Ticks() uint64 {
	return c.tickCount.Load()
}

// Run drives the game until it is over or ctx is canceled
// A state that starts over (a board with no room for food) is rendered once before the game-over message
// Returns the final state; the error is nil on a normal game over
func (c *GameClock) Run(ctx context.Context) (GameState, error) {
	if !c.running.CompareAndSwap(false, true) {
		return c.State(), errors.ErrClockRunning
	}
	defer c.doneOnce.Do(func() { close(c.done) })

	state := c.State()
	if state.Over() {
		if err := c.renderer.Render(state.Snapshot()); err != nil {
			return state, errors.Wrap(err, "failed to render board")
		}
		return state, c.finish(state)
	}

	c.nextTickDeadline = c.timeProvider.Now().Add(c.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	c.logger.Debug().Dur("interval", c.tickInterval).Int("width", state.Width).Int("height", state.Height).Msg("clock started")

	for {
		// (a) render
		snap := state.Snapshot()
		snap.Tick = c.tickCount.Load()
		if err := c.renderer.Render(snap); err != nil {
			return state, errors.Wrap(err, "failed to render board")
		}

		// (b) sleep until the tick boundary
		if err := c.sleepUntilDeadline(ctx, timer); err != nil {
			c.logger.Debug().Err(err).Uint64("tick", c.tickCount.Load()).Msg("clock canceled")
			return state, err
		}

		// (c) non-blocking drain
		requested, _ := c.mailbox.Take()

		// (d, e) transition and replace
		next, over := state.Step(requested, c.rng)
		tick := c.tickCount.Add(1)

		c.mu.Lock()
		c.state = next
		c.mu.Unlock()

		for _, ev := range deriveEvents(state, next, tick) {
			c.router.Dispatch(ev)
		}
		state = next

		// (f) termination
		if over {
			return state, c.finish(state)
		}
	}
}

// sleepUntilDeadline waits for the next tick boundary and schedules the one after it
// A clock that falls more than MaxTickLag intervals behind rebases instead of bursting
func (c *GameClock) sleepUntilDeadline(ctx context.Context, timer *time.Timer) error {
	if d := c.nextTickDeadline.Sub(c.timeProvider.Now()); d > 0 {
		timer.Reset(d)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	now := c.timeProvider.Now()
	c.nextTickDeadline = c.nextTickDeadline.Add(c.tickInterval)
	if now.Sub(c.nextTickDeadline) > c.tickInterval*constants.MaxTickLag {
		c.nextTickDeadline = now.Add(c.tickInterval)
	}
	return nil
}

// finish reports the final score through the renderer
func (c *GameClock) finish(state GameState) error {
	posted, overwritten := c.mailbox.Stats()
	c.logger.Info().
		Int("score", state.Score).
		Int("length", len(state.Snake)).
		Stringer("cause", state.Cause).
		Uint64("ticks", c.tickCount.Load()).
		Uint64("commands", posted).
		Uint64("coalesced", overwritten).
		Msg("game over")

	return errors.Wrap(c.renderer.GameOver(state.Score), "failed to render game over")
}
