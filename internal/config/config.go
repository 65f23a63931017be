package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/wesen/nudgebud/internal/tokens"
	"github.com/wesen/nudgebud/pkg/flowlayout"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds preview configuration.
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme"`
	Layout LayoutConfig `mapstructure:"layout"`
	Chips  ChipsConfig  `mapstructure:"chips"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

// ThemeConfig selects the colour scheme and an optional token override file.
type ThemeConfig struct {
	Scheme     string `mapstructure:"scheme"`
	TokensFile string `mapstructure:"tokens_file"`
}

// LayoutConfig holds spacing in terminal cells.
type LayoutConfig struct {
	HSpacing int `mapstructure:"h_spacing"`
	VSpacing int `mapstructure:"v_spacing"`
	Padding  int `mapstructure:"padding"`
}

type ChipsConfig struct {
	PickLimit int `mapstructure:"pick_limit"`
}

type DebugConfig struct {
	LogFile string `mapstructure:"log_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme.scheme", "light")
	v.SetDefault("theme.tokens_file", "")
	v.SetDefault("layout.h_spacing", 2)
	v.SetDefault("layout.v_spacing", 1)
	v.SetDefault("layout.padding", 2)
	v.SetDefault("chips.pick_limit", 3)
	v.SetDefault("debug.log_file", "")
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// DefaultPath is where Load looks when neither an explicit path nor
// NUDGEBUD_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "nudgebud", "config.toml")
}

// Load reads configuration from file and env. path wins over
// NUDGEBUD_CONFIG; with neither, a missing default file is not an error.
// Env var overrides use prefix NUDGEBUD_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("NUDGEBUD_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NUDGEBUD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if _, err := tokens.ParseScheme(c.Theme.Scheme); err != nil {
		return fmt.Errorf("%w: theme.scheme: %w", ErrInvalid, err)
	}
	switch {
	case c.Layout.HSpacing < 0:
		return fmt.Errorf("%w: layout.h_spacing %d is negative", ErrInvalid, c.Layout.HSpacing)
	case c.Layout.VSpacing < 0:
		return fmt.Errorf("%w: layout.v_spacing %d is negative", ErrInvalid, c.Layout.VSpacing)
	case c.Layout.Padding < 0:
		return fmt.Errorf("%w: layout.padding %d is negative", ErrInvalid, c.Layout.Padding)
	case c.Chips.PickLimit < 1:
		return fmt.Errorf("%w: chips.pick_limit must be at least 1, got %d", ErrInvalid, c.Chips.PickLimit)
	}
	return nil
}

// Scheme returns the parsed colour scheme, Light when invalid.
func (c Config) Scheme() tokens.Scheme {
	s, _ := tokens.ParseScheme(c.Theme.Scheme)
	return s
}

// Spacing returns the chip spacing for the flow layout.
func (c Config) Spacing() flowlayout.Spacing {
	return flowlayout.Spacing{
		Horizontal: float64(c.Layout.HSpacing),
		Vertical:   float64(c.Layout.VSpacing),
	}
}

// LoadTheme loads the token set and pairs it with the configured scheme.
func (c Config) LoadTheme() (tokens.Theme, error) {
	t, err := tokens.LoadFile(c.Theme.TokensFile)
	if err != nil {
		return tokens.Theme{}, err
	}
	return tokens.Theme{Scheme: c.Scheme(), Tokens: t}, nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("theme.scheme", cfg.Theme.Scheme)
	v.Set("theme.tokens_file", cfg.Theme.TokensFile)
	v.Set("layout.h_spacing", cfg.Layout.HSpacing)
	v.Set("layout.v_spacing", cfg.Layout.VSpacing)
	v.Set("layout.padding", cfg.Layout.Padding)
	v.Set("chips.pick_limit", cfg.Chips.PickLimit)
	v.Set("debug.log_file", cfg.Debug.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
