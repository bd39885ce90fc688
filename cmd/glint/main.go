package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/glintsearch/glint/internal/config"
	"github.com/glintsearch/glint/internal/telemetry"
)

var version = "0.3.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "glint",
		Usage:                  "Search, traverse and view local files",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show debug information",
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			traverseCommand(),
			treeCommand(),
			viewCommand(),
		},
	}
}

// newLogger builds the process logger handed to every operation.
// Stderr keeps stdout clean for results.
func newLogger(c *cli.Context) *telemetry.Logger {
	level := telemetry.LevelWarn
	if c.Bool("verbose") {
		level = telemetry.LevelDebug
	}
	return telemetry.New(os.Stderr, level)
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	return config.Load(c.String("config"))
}

// resolveDepth picks the flag value when given, otherwise the config
// default. Zero means unlimited.
func resolveDepth(c *cli.Context, cfg *config.Config) int {
	if c.IsSet("max-depth") {
		return c.Int("max-depth")
	}
	return cfg.MaxDepth
}
