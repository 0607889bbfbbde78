package cli

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/errors"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/signal"
)

// soundDrainTimeout lets the game-over effect finish before the speaker closes
const soundDrainTimeout = time.Second

// runGame plays one game to completion, quit or interrupt
// stdin feeds line input and stdout receives plain frames; the terminal renderer owns the tty directly
func runGame(ctx context.Context, cfg *config.Config, logger zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// rand.Rand is not goroutine-safe: the clock and the autoplay pilot each get their own
	gameRng := rand.New(rand.NewPCG(uint64(seed), 0))
	pilotRng := rand.New(rand.NewPCG(uint64(seed), 1))

	interval := tickInterval(cfg)
	logger.Info().
		Str("mode", cfg.Mode).
		Str("renderer", cfg.Renderer).
		Int64("seed", seed).
		Dur("tick", interval).
		Msg("game starting")

	sig := signal.NewHandler(ctx, logger)
	defer sig.Stop()

	renderer, keys, err := newRenderer(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := renderer.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("renderer close failed")
		}
	}()
	if keys != nil {
		core.SetCrashCleanup(keys.Screen().Fini)
		defer core.SetCrashCleanup(nil)
	}

	mailbox := engine.NewMailbox()
	state := engine.NewGameState(constants.GridWidth, constants.GridHeight, gameRng)

	opts := []engine.ClockOption{
		engine.WithLogger(logger),
		engine.WithRand(gameRng),
		engine.WithEventHandler(engine.NewEventLogger(logger)),
	}
	if sm := newSoundManager(cfg, logger); sm != nil {
		defer sm.Cleanup()
		defer sm.Drain(soundDrainTimeout)
		opts = append(opts, engine.WithEventHandler(sm))
	}

	clock := engine.NewGameClock(state, mailbox, renderer, interval, opts...)

	var listeners []*input.Listener
	for _, src := range inputSources(cfg, keys, stdin, pilotRng, interval) {
		l := input.NewListener(src, mailbox,
			input.WithListenerLogger(logger),
			input.WithQuitHandler(sig.Quit),
		)
		l.Start(clock.Done())
		listeners = append(listeners, l)
	}

	final, err := clock.Run(sig.Context())

	posted, overwritten := mailbox.Stats()
	var accepted, ignored uint64
	for _, l := range listeners {
		a, i := l.Stats()
		accepted += a
		ignored += i
	}
	logger.Info().
		Int("score", final.Score).
		Str("cause", final.Cause.String()).
		Uint64("ticks", clock.Ticks()).
		Uint64("tokens_accepted", accepted).
		Uint64("tokens_ignored", ignored).
		Uint64("commands_posted", posted).
		Uint64("commands_coalesced", overwritten).
		Msg("game finished")

	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Quit key or SIGINT: a normal way to leave
			return nil
		}
		return err
	}
	return nil
}

// tickInterval resolves the tick period from mode and override
func tickInterval(cfg *config.Config) time.Duration {
	if cfg.TickInterval > 0 {
		return cfg.TickInterval
	}
	if cfg.Mode == constants.ModeAutoplay {
		return constants.AutoplayTickInterval
	}
	return constants.InteractiveTickInterval
}

// newRenderer returns the configured renderer and, for the tcell screen, the renderer itself as key provider
func newRenderer(cfg *config.Config, stdout io.Writer) (render.Renderer, *render.TerminalRenderer, error) {
	if cfg.Renderer == constants.RendererTerminal {
		tr, err := render.NewTerminalRenderer()
		if err != nil {
			return nil, nil, err
		}
		return tr, tr, nil
	}
	return render.NewPlainRenderer(stdout), nil, nil
}

// inputSources picks the producers feeding the mailbox
// With the tcell screen, keys are always read so quit works in autoplay too
func inputSources(cfg *config.Config, keys *render.TerminalRenderer, stdin io.Reader, pilotRng *rand.Rand, interval time.Duration) []input.Source {
	var sources []input.Source
	if keys != nil {
		sources = append(sources, input.NewKeySource(keys.Screen()))
	}
	if cfg.Mode == constants.ModeAutoplay {
		sources = append(sources, input.NewAutoSource(pilotRng, interval))
	} else if keys == nil {
		sources = append(sources, input.NewLineSource(stdin))
	}
	return sources
}

// newSoundManager returns an initialized manager, or nil when sound is off or unavailable
func newSoundManager(cfg *config.Config, logger zerolog.Logger) *audio.SoundManager {
	if !cfg.Sound {
		return nil
	}

	audioCfg := audio.DefaultAudioConfig().WithVolume(cfg.Volume)
	audioCfg.Enabled = true

	sm := audio.NewSoundManager(audioCfg, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		return nil
	}
	return sm
}
