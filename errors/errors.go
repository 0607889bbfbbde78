// Package errors provides the sentinel errors shared across vi-snake.
//
// Gameplay outcomes are not errors: malformed input is dropped and a collision
// is a normal terminal state of the game. The sentinels here cover the outer
// shell (configuration, terminal, input sources) and are checked with errors.Is.
//
// This package MUST NOT import any other vi-snake package.
package errors

import "errors"

var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrInvalidMode indicates a play mode other than interactive or autoplay.
	ErrInvalidMode = errors.New("invalid play mode")

	// ErrInvalidRenderer indicates an unknown renderer name.
	ErrInvalidRenderer = errors.New("invalid renderer")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrQuit is returned by an input source when the player asks to leave the game.
	ErrQuit = errors.New("quit requested")

	// ErrSourceClosed indicates that an input source has no more tokens to deliver.
	ErrSourceClosed = errors.New("input source closed")

	// ErrRendererClosed indicates a draw call after the renderer was closed.
	ErrRendererClosed = errors.New("renderer closed")

	// ErrClockRunning indicates a second Run on a clock that already started.
	ErrClockRunning = errors.New("clock already running")

	// ErrTerminalInit indicates the terminal screen could not be initialized.
	ErrTerminalInit = errors.New("terminal initialization failed")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
