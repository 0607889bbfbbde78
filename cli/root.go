// Package cli provides the command-line interface for vi-snake
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-snake/config"
)

// BuildInfo contains version information set at build time via ldflags
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// newRootCmd creates the root command; running it with no subcommand plays a game
func newRootCmd(flags *GameFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vi-snake",
		Short: "Terminal snake on a fixed-rate clock",
		Long: `vi-snake is a snake game on a 20x10 board.

The clock ticks every 100ms (500ms in autoplay). Type w, a, s or d followed by
Enter to turn; with --renderer terminal the arrow keys work directly and q quits.`,
		Version: formatVersion(info),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			sessionID := uuid.NewString()
			logger, closer, err := InitLogger(cfg.Log, sessionID)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx := logger.WithContext(cmd.Context())
			return runGame(ctx, cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	AddGameFlags(cmd, flags)
	AddConfigCommand(cmd, flags)

	return cmd
}

// loadConfig merges file, environment and the flags set on this invocation
func loadConfig(cmd *cobra.Command, flags *GameFlags) (*config.Config, error) {
	return config.LoadWithOverrides(cmd.Context(), flags.ConfigPath, buildOverrides(cmd, flags))
}

// formatVersion creates the version string from build info
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GameFlags{}
	cmd := newRootCmd(flags, info)
	// Config loading logs through the context logger, which is silent until a game starts
	return cmd.ExecuteContext(zerolog.Nop().WithContext(ctx))
}
