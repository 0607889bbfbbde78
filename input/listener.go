package input

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/errors"
)

// Listener is the background producer feeding the clock's mailbox
// It blocks on its source, so it is detached rather than joined: once the game is over
// the goroutine exits at its next wake-up or is abandoned with the process
type Listener struct {
	source  Source
	mailbox *engine.Mailbox
	logger  zerolog.Logger
	onQuit  func()

	accepted atomic.Uint64
	ignored  atomic.Uint64
}

// ListenerOption configures a Listener
type ListenerOption func(*Listener)

// WithListenerLogger attaches a structured logger
func WithListenerLogger(logger zerolog.Logger) ListenerOption {
	return func(l *Listener) {
		l.logger = logger
	}
}

// WithQuitHandler sets the callback invoked when the source reports ErrQuit
func WithQuitHandler(fn func()) ListenerOption {
	return func(l *Listener) {
		l.onQuit = fn
	}
}

// NewListener creates a listener posting recognized commands to mailbox
func NewListener(source Source, mailbox *engine.Mailbox, opts ...ListenerOption) *Listener {
	l := &Listener{
		source:  source,
		mailbox: mailbox,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start runs the listener on its own goroutine and returns immediately
// A read failure other than end of input or quit leaves the game without input and is logged as a warning
func (l *Listener) Start(done <-chan struct{}) {
	core.Go(func() {
		err := l.Run(done)
		if err == nil || errors.Is(err, errors.ErrSourceClosed) || errors.Is(err, errors.ErrQuit) {
			return
		}
		l.logger.Warn().Err(err).Msg("input listener stopped, further commands are lost")
	})
}

// Run reads tokens until done is closed or the source fails
// Unrecognized tokens are dropped silently; a token read after done closed is discarded
// Returns nil on game over, the source error otherwise
func (l *Listener) Run(done <-chan struct{}) error {
	for {
		if closed(done) {
			return nil
		}

		raw, err := l.source.Next()
		if closed(done) {
			return nil
		}

		if err != nil {
			if errors.Is(err, errors.ErrQuit) {
				l.logger.Debug().Msg("quit requested from keyboard")
				if l.onQuit != nil {
					l.onQuit()
				}
			} else {
				l.logger.Debug().Err(err).Msg("input source stopped")
			}
			return err
		}

		d, ok := ParseToken(raw)
		if !ok {
			l.ignored.Add(1)
			continue
		}

		l.accepted.Add(1)
		l.mailbox.Post(d)
	}
}

// Stats returns counts of recognized and discarded tokens
func (l *Listener) Stats() (accepted, ignored uint64) {
	return l.accepted.Load(), l.ignored.Load()
}

func closed(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
