// Package config loads vi-snake settings with layered precedence.
//
// Sources, highest precedence first:
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (VISNAKE_* prefix)
//  3. Config file (vi-snake.yaml in the working directory, or --config)
//  4. Built-in defaults
//
// Grid dimensions and glyphs are not configurable.
package config

import "time"

// Config is the root configuration structure
type Config struct {
	// Mode selects interactive play or the random autoplay pilot
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Renderer selects plain text frames or the tcell screen
	Renderer string `yaml:"renderer" mapstructure:"renderer"`

	// Sound enables audio effects
	Sound bool `yaml:"sound" mapstructure:"sound"`

	// Volume is the master volume percentage, 0-100
	Volume int `yaml:"volume" mapstructure:"volume"`

	// Seed fixes the random source; 0 seeds from the clock
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// TickInterval overrides the mode's tick period; 0 keeps the default
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// Log controls the debug log file
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig holds debug log settings
// Logs never go to stdout, which belongs to the board
type LogConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// Overrides carries CLI flag values; nil fields were not set on the command line
type Overrides struct {
	Mode         *string
	Renderer     *string
	Sound        *bool
	Volume       *int
	Seed         *int64
	TickInterval *time.Duration
	LogEnabled   *bool
}
