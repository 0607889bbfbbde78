package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
)

// Exit codes for the CLI
const (
	ExitSuccess = 0
	ExitError   = 1
)

// GameFlags holds flags shared by the root command and its subcommands
type GameFlags struct {
	ConfigPath   string
	Autoplay     bool
	Renderer     string
	Sound        bool
	Volume       int
	Seed         int64
	TickInterval time.Duration
	Debug        bool
}

// AddGameFlags registers persistent flags so `vi-snake config` sees the same overrides
func AddGameFlags(cmd *cobra.Command, flags *GameFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file (default ./vi-snake.yaml if present)")
	pf.BoolVar(&flags.Autoplay, "autoplay", false, "let a random pilot steer the snake")
	pf.StringVar(&flags.Renderer, "renderer", constants.RendererPlain, "output renderer (plain|terminal)")
	pf.BoolVar(&flags.Sound, "sound", false, "enable sound effects")
	pf.IntVar(&flags.Volume, "volume", constants.DefaultVolume, "master volume, 0-100")
	pf.Int64Var(&flags.Seed, "seed", 0, "random seed; 0 seeds from the clock")
	pf.DurationVar(&flags.TickInterval, "tick", 0, "tick interval override; 0 keeps the mode default")
	pf.BoolVar(&flags.Debug, "debug", false, "write debug logs to the log file")
}

// buildOverrides returns only the flags the user actually set
func buildOverrides(cmd *cobra.Command, flags *GameFlags) *config.Overrides {
	changed := cmd.Flags().Changed
	o := &config.Overrides{}

	if changed("autoplay") {
		mode := constants.ModeInteractive
		if flags.Autoplay {
			mode = constants.ModeAutoplay
		}
		o.Mode = &mode
	}
	if changed("renderer") {
		o.Renderer = &flags.Renderer
	}
	if changed("sound") {
		o.Sound = &flags.Sound
	}
	if changed("volume") {
		o.Volume = &flags.Volume
	}
	if changed("seed") {
		o.Seed = &flags.Seed
	}
	if changed("tick") {
		o.TickInterval = &flags.TickInterval
	}
	if changed("debug") {
		o.LogEnabled = &flags.Debug
	}
	return o
}
