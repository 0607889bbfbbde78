package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-snake/constants"
)

// DefaultConfig returns the configuration used with no file, environment or flags
// It reproduces the classic game: interactive, plain frames, silent
func DefaultConfig() *Config {
	return &Config{
		Mode:     constants.ModeInteractive,
		Renderer: constants.RendererPlain,
		Sound:    false,
		Volume:   constants.DefaultVolume,
		Log: LogConfig{
			Enabled:    false,
			File:       filepath.Join(constants.LogDir, constants.LogFileName),
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
		},
	}
}

// setDefaults registers every key so environment overrides are seen by Unmarshal
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("mode", d.Mode)
	v.SetDefault("renderer", d.Renderer)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("volume", d.Volume)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("tick_interval", "0s")

	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
}
