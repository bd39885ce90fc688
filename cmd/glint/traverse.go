package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/glintsearch/glint/internal/traverse"
)

func traverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "traverse",
		Aliases:   []string{"t"},
		Usage:     "Traverse directories and list files",
		ArgsUsage: "<directory> [pattern]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "case-sensitive",
				Usage: "Case sensitive matching",
			},
			&cli.BoolFlag{
				Name:  "no-ignore",
				Usage: "Ignore gitignore files and include hidden entries",
			},
			&cli.BoolFlag{
				Name:  "include-binary",
				Usage: "Include binary files",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum directory traversal depth (0 for unlimited)",
			},
			&cli.StringFlag{
				Name:  "strip-prefix",
				Usage: "Strip this path prefix from reported files",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
		},
		Action: runTraverse,
	}
}

func runTraverse(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("usage: glint traverse <directory> [pattern]")
	}
	directory := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := traverse.DefaultOptions()
	opts.CaseSensitive = c.Bool("case-sensitive") || cfg.CaseSensitive
	opts.RespectGitignore = !(c.Bool("no-ignore") || cfg.NoIgnore)
	opts.OnlyTextFiles = !c.Bool("include-binary")
	opts.Pattern = c.Args().Get(1)
	opts.Depth = resolveDepth(c, cfg)
	opts.OmitPathPrefix = c.String("strip-prefix")

	results, err := traverse.Run(directory, opts, nil, newLogger(c))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No files found.")
		return nil
	}

	fmt.Printf("Found %d files:\n", len(results))
	for _, entry := range results {
		marker := " "
		if entry.IsHidden() {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s\n", marker, entry.FileType, entry.FilePath)
	}
	return nil
}
