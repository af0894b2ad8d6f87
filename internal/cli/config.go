package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dotplain/dotplain/pkg/errors"
)

// configFile is the name of the optional config file inside configDir.
const configFile = "config.toml"

// Defaults for rendering when neither flags nor config specify values.
// Width is the target pixel width of the canvas; the scale factors map
// Graphviz layout units to canvas pixels.
const (
	defaultWidth  = 200.0
	defaultScaleX = 50.0
	defaultScaleY = 50.0
)

// Config holds user preferences loaded from ~/.config/dotplain/config.toml.
// Flags override config values; config values override defaults.
type Config struct {
	Width   float64 `toml:"width"`
	ScaleX  float64 `toml:"scale_x"`
	ScaleY  float64 `toml:"scale_y"`
	Debug   bool    `toml:"debug"`
	Font    string  `toml:"font"`
	NoCache bool    `toml:"no_cache"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Width:  defaultWidth,
		ScaleX: defaultScaleX,
		ScaleY: defaultScaleY,
	}
}

// loadConfig reads the config file if one exists. A missing file is not an
// error; the defaults are returned unchanged.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.ScaleX <= 0 {
		cfg.ScaleX = defaultScaleX
	}
	if cfg.ScaleY <= 0 {
		cfg.ScaleY = defaultScaleY
	}
	return cfg, nil
}
