package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "FIELDMATCH_"

// Config is the merged application configuration
type Config struct {
	Logging    LoggingConfig    `koanf:"logging"`
	Pattern    PatternConfig    `koanf:"pattern"`
	Output     OutputConfig     `koanf:"output"`
	HideSeries HideSeriesConfig `koanf:"hide_series"`
}

// LoggingConfig controls log verbosity when no -v flag is given
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// PatternConfig tunes regular expression evaluation
type PatternConfig struct {
	MatchTimeout time.Duration `koanf:"match_timeout"`
}

// OutputConfig selects how documents are printed
type OutputConfig struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// HideSeriesConfig holds legend click defaults
type HideSeriesConfig struct {
	DefaultMode string `koanf:"default_mode"`
}

var (
	outputFormats = []string{"json", "yaml", "toml", "msgpack"}
	colorModes    = []string{"auto", "always", "never"}
)

// LegendMode returns the configured default legend event mode
func (c *Config) LegendMode() types.LegendEventMode {
	mode, ok := types.ParseLegendEventMode(c.HideSeries.DefaultMode)
	if !ok {
		return types.ToggleSelection
	}
	return mode
}

// DefaultUserConfigPath is where Load looks for the user file
func DefaultUserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "fieldmatch", "config.toml")
}

// Load merges defaults, the user file, the environment and overrides.
// An empty path selects DefaultUserConfigPath, which may be missing; an
// explicit path must exist. Keys in overrides use dotted paths such as
// "output.format".
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	userPath := path
	if userPath == "" {
		userPath = DefaultUserConfigPath()
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("loaded user config")
	} else if path != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no command can use
func (c *Config) Validate() error {
	if !oneOf(c.Output.Format, outputFormats) {
		return errors.Newf(errors.ErrConfigParse, "output.format must be one of %s, got '%s'",
			strings.Join(outputFormats, ", "), c.Output.Format)
	}
	if !oneOf(c.Output.Color, colorModes) {
		return errors.Newf(errors.ErrConfigParse, "output.color must be one of %s, got '%s'",
			strings.Join(colorModes, ", "), c.Output.Color)
	}
	if _, ok := types.ParseLegendEventMode(c.HideSeries.DefaultMode); !ok {
		return errors.Newf(errors.ErrConfigParse, "hide_series.default_mode must be toggle or append, got '%s'",
			c.HideSeries.DefaultMode)
	}
	if c.Pattern.MatchTimeout < 0 {
		return errors.Newf(errors.ErrConfigParse, "pattern.match_timeout must not be negative, got %s",
			c.Pattern.MatchTimeout)
	}
	return nil
}

// envKey maps FIELDMATCH_HIDE_SERIES__DEFAULT_MODE to hide_series.default_mode
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
