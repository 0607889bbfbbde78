package config

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/errors"
)

// Validate checks the configuration and returns the first failure found
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	switch cfg.Mode {
	case constants.ModeInteractive, constants.ModeAutoplay:
	default:
		return errors.Wrapf(errors.ErrInvalidMode, "mode must be %q or %q, got %q",
			constants.ModeInteractive, constants.ModeAutoplay, cfg.Mode)
	}

	switch cfg.Renderer {
	case constants.RendererPlain, constants.RendererTerminal:
	default:
		return errors.Wrapf(errors.ErrInvalidRenderer, "renderer must be %q or %q, got %q",
			constants.RendererPlain, constants.RendererTerminal, cfg.Renderer)
	}

	if cfg.Volume < 0 || cfg.Volume > 100 {
		return errors.Wrapf(errors.ErrValueOutOfRange, "volume must be between 0 and 100, got %d", cfg.Volume)
	}

	if cfg.TickInterval != 0 && cfg.TickInterval < constants.MinTickInterval {
		return errors.Wrapf(errors.ErrValueOutOfRange, "tick_interval must be 0 or at least %s, got %s",
			constants.MinTickInterval, cfg.TickInterval)
	}

	return validateLogConfig(&cfg.Log)
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.Enabled && cfg.File == "" {
		return errors.Wrap(errors.ErrValueOutOfRange, "log.file must be set when logging is enabled")
	}
	if cfg.MaxSizeMB < 1 {
		return errors.Wrapf(errors.ErrValueOutOfRange, "log.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrValueOutOfRange, "log.max_backups must not be negative, got %d", cfg.MaxBackups)
	}
	return nil
}
