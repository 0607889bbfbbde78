package cli

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/errors"
)

// AddConfigCommand adds `vi-snake config`, which prints the effective configuration
func AddConfigCommand(root *cobra.Command, flags *GameFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration a game would run with, after applying defaults,
vi-snake.yaml, VISNAKE_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return writeConfigYAML(cmd.OutOrStdout(), cfg)
		},
		SilenceUsage: true,
	})
}

func writeConfigYAML(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return errors.Wrap(enc.Close(), "failed to flush config")
}
