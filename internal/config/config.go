// Package config reads the driver's settings from the environment.
package config

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/idilsaglam/tada/internal/ui"
)

// Output formats understood by the driver.
const (
	FormatPlain = "plain"
	FormatPanel = "panel"
	FormatJSON  = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatPlain, FormatPanel, FormatJSON}

type Config struct {
	Theme    string `env:"TADA_THEME" envDefault:"classic"`
	Format   string `env:"TADA_FORMAT" envDefault:"plain"`
	LogLevel string `env:"TADA_LOG_LEVEL" envDefault:"warn"`
	Title    string `env:"TADA_TITLE" envDefault:"Today's Todos"`
	Group    bool   `env:"TADA_GROUP"`
	NoColor  bool   `env:"NO_COLOR"`
}

// Load parses the process environment. Callers apply flag overrides and
// then call Validate.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom is Load over an explicit environment, mainly for tests.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Validate checks that the format and theme are known.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %v)", c.Format, Formats)
	}
	if _, err := ui.Lookup(c.Theme); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}

// EffectiveTheme is the theme to render with; NO_COLOR wins over TADA_THEME.
func (c Config) EffectiveTheme() string {
	if c.NoColor {
		return "mono"
	}
	return c.Theme
}
