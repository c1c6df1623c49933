package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Root flags (apply to every subcommand); environment provides defaults.
	flag.BoolVar(&cfg.Group, "group", cfg.Group, "group panel output by pending/done")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: plain, panel or json")
	flag.StringVar(&cfg.Theme, "theme", cfg.EffectiveTheme(), "panel theme: classic, neon or mono")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "title of the sample list")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.Usage = func() { cli.PrintHelp(os.Stderr); flag.PrintDefaults() }
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		ui.Default().Fail(os.Stderr, err.Error())
		os.Exit(2)
	}
	th, err := ui.Lookup(cfg.Theme)
	if err != nil {
		ui.Default().Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	code := cli.Run(flag.Args(), cli.Options{
		Group:  cfg.Group,
		Format: cfg.Format,
		Title:  cfg.Title,
		Theme:  th,
		Logger: logging.New(os.Stderr, cfg.LogLevel),
	})
	os.Exit(code)
}
