package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/errors"
)

// InitLogger builds the session logger from config
// Stdout belongs to the board, so logging is either a rotated file or nothing at all
// The returned closer releases the log file and is never nil
func InitLogger(cfg config.LogConfig, sessionID string) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerolog.Nop(), nopCloser{}, errors.Wrapf(err, "failed to create log directory %s", dir)
		}
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return InitLoggerWithWriter(fileWriter, sessionID), fileWriter, nil
}

// InitLoggerWithWriter creates a debug-level JSON logger on w
func InitLoggerWithWriter(w io.Writer, sessionID string) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("session", sessionID).
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
