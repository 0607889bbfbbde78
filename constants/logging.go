package constants

import "time"

// Logging Constants
const (
	// LogDir is the default directory for debug logs, relative to the working directory
	LogDir = "logs"

	// LogFileName is the default debug log file name
	LogFileName = "vi-snake.log"

	// LogMaxSizeMB is the size at which the debug log is rotated
	LogMaxSizeMB = 10

	// LogMaxBackups is how many rotated logs are kept
	LogMaxBackups = 3
)

// Configuration Constants
const (
	// EnvPrefix prefixes every environment override (VISNAKE_MODE, VISNAKE_SOUND, ...)
	EnvPrefix = "VISNAKE"

	// ConfigName is the config file base name looked up in the working directory
	ConfigName = "vi-snake"
)

// Config Values
const (
	ModeInteractive  = "interactive"
	ModeAutoplay     = "autoplay"
	RendererPlain    = "plain"
	RendererTerminal = "terminal"

	// MinTickInterval bounds a configured tick override from below
	MinTickInterval = 10 * time.Millisecond
)
