package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/glintsearch/glint/internal/tree"
)

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "Display directory structure as a tree",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "case-sensitive",
				Usage: "Case sensitive matching",
			},
			&cli.BoolFlag{
				Name:  "no-ignore",
				Usage: "Ignore gitignore files and include hidden entries",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum directory traversal depth (0 for unlimited)",
			},
			&cli.StringFlag{
				Name:  "strip-prefix",
				Usage: "Strip this path prefix from directory keys",
			},
		},
		Action: runTree,
	}
}

func runTree(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: glint tree <directory>")
	}
	directory := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := tree.DefaultOptions()
	opts.CaseSensitive = c.Bool("case-sensitive") || cfg.CaseSensitive
	opts.RespectGitignore = !(c.Bool("no-ignore") || cfg.NoIgnore)
	opts.Depth = resolveDepth(c, cfg)
	opts.OmitPathPrefix = c.String("strip-prefix")

	results, err := tree.Run(directory, opts, newLogger(c))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No directories found.")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
