package config

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/errors"
)

// newViperInstance creates a viper with the VISNAKE_ prefix, key replacer and defaults
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if err is viper's missing config file error
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from defaults, an optional file and the environment
// An explicit path must exist; the implicit vi-snake.yaml lookup is skipped when absent
func Load(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else {
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("file", v.ConfigFileUsed()).
		Str("mode", cfg.Mode).
		Str("renderer", cfg.Renderer).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag values on top
func LoadWithOverrides(ctx context.Context, path string, overrides *Overrides) (*Config, error) {
	cfg, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

func applyOverrides(cfg *Config, o *Overrides) {
	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.Renderer != nil {
		cfg.Renderer = *o.Renderer
	}
	if o.Sound != nil {
		cfg.Sound = *o.Sound
	}
	if o.Volume != nil {
		cfg.Volume = *o.Volume
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.TickInterval != nil {
		cfg.TickInterval = *o.TickInterval
	}
	if o.LogEnabled != nil {
		cfg.Log.Enabled = *o.LogEnabled
	}
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
