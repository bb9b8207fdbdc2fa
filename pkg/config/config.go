package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Drawer DrawerConfig
	Log    LogConfig
	Theme  ThemeConfig
}

// UIConfig maps terminal cells onto density-independent units.
type UIConfig struct {
	CellDP     int `mapstructure:"cell_dp"`
	ListPaneDP int `mapstructure:"list_pane_dp"`
}

// DrawerConfig tunes the drawer slide spring.
type DrawerConfig struct {
	FPS       int
	Frequency float64
	Damping   float64
}

type LogConfig struct {
	Path  string
	Debug bool
}

// ThemeConfig holds hex colors for the palette.
type ThemeConfig struct {
	Primary            string
	OnPrimary          string `mapstructure:"on_primary"`
	PrimaryContainer   string `mapstructure:"primary_container"`
	OnPrimaryContainer string `mapstructure:"on_primary_container"`
	Secondary          string
	Surface            string
	SurfaceVariant     string `mapstructure:"surface_variant"`
	Background         string
	Outline            string
	OnSurface          string `mapstructure:"on_surface"`
}

// DefaultPath is used when FITTRACKER_CONFIG is unset.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "fittracker", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.cell_dp", 8)
	v.SetDefault("ui.list_pane_dp", 300)
	v.SetDefault("drawer.fps", 60)
	v.SetDefault("drawer.frequency", 12.0)
	v.SetDefault("drawer.damping", 1.0)
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "fittracker.log"))
	v.SetDefault("log.debug", false)

	v.SetDefault("theme.primary", "#CCFF00")
	v.SetDefault("theme.on_primary", "#000000")
	v.SetDefault("theme.primary_container", "#2E3500")
	v.SetDefault("theme.on_primary_container", "#CCFF00")
	v.SetDefault("theme.secondary", "#B0BEC5")
	v.SetDefault("theme.surface", "#121412")
	v.SetDefault("theme.surface_variant", "#49454F")
	v.SetDefault("theme.background", "#0A0B0A")
	v.SetDefault("theme.outline", "#3F443F")
	v.SetDefault("theme.on_surface", "#E6E1E5")
}

// Default returns the built-in configuration without touching the filesystem
// or environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: built-in defaults do not decode: %v", err))
	}
	return c
}

// Load reads configuration from path (or FITTRACKER_CONFIG, or the default
// location) and the environment. Env var overrides use prefix FITTRACKER_.
// A missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("FITTRACKER_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("FITTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if explicit {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
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

// Validate rejects values the UI cannot lay out with.
func (c Config) Validate() error {
	if c.UI.CellDP <= 0 {
		return fmt.Errorf("ui.cell_dp must be positive, got %d", c.UI.CellDP)
	}
	if c.UI.ListPaneDP <= 0 {
		return fmt.Errorf("ui.list_pane_dp must be positive, got %d", c.UI.ListPaneDP)
	}
	if c.Drawer.FPS <= 0 {
		return fmt.Errorf("drawer.fps must be positive, got %d", c.Drawer.FPS)
	}
	if c.Drawer.Frequency <= 0 {
		return fmt.Errorf("drawer.frequency must be positive, got %g", c.Drawer.Frequency)
	}
	if c.Drawer.Damping < 0 {
		return fmt.Errorf("drawer.damping must not be negative, got %g", c.Drawer.Damping)
	}
	colors := map[string]string{
		"theme.primary":              c.Theme.Primary,
		"theme.on_primary":           c.Theme.OnPrimary,
		"theme.primary_container":    c.Theme.PrimaryContainer,
		"theme.on_primary_container": c.Theme.OnPrimaryContainer,
		"theme.secondary":            c.Theme.Secondary,
		"theme.surface":              c.Theme.Surface,
		"theme.surface_variant":      c.Theme.SurfaceVariant,
		"theme.background":           c.Theme.Background,
		"theme.outline":              c.Theme.Outline,
		"theme.on_surface":           c.Theme.OnSurface,
	}
	for key, value := range colors {
		if !isHexColor(value) {
			return fmt.Errorf("%s: invalid hex color %q", key, value)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
