// Package signal cancels the game's run context on SIGINT/SIGTERM or a keyboard quit
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/core"
)

// Handler wraps a context and cancels it when SIGINT or SIGTERM is received
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler manages context lifecycle
	cancel      context.CancelFunc
	logger      zerolog.Logger
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler creates a signal handler listening for SIGINT and SIGTERM
//
// Usage:
//
//	h := signal.NewHandler(ctx, logger)
//	defer h.Stop()
//	ctx = h.Context()
func NewHandler(parent context.Context, logger zerolog.Logger) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffer of 1 so signal.Notify never drops a signal while the handler is busy
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	core.Go(h.listen)

	return h
}

// Context returns the cancellable context
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes when an OS signal is received
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Quit cancels the context without marking an OS interrupt; used by the keyboard quit binding
func (h *Handler) Quit() {
	h.logger.Debug().Msg("quit requested")
	h.cancel()
}

// Stop releases the signal subscription; safe to call more than once
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handleSignal processes a received signal; only the first one has effect
func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		h.logger.Info().Str("signal", sig.String()).Msg("interrupted")
		h.cancel()
		close(h.interrupted)
	})
}

// listen loops until Stop or an external cancel, draining repeated signals
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
