package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/glintsearch/glint/internal/search"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search for a regex pattern in files",
		ArgsUsage: "<pattern> <directory>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "case-sensitive",
				Usage: "Case sensitive search",
			},
			&cli.BoolFlag{
				Name:  "no-ignore",
				Usage: "Ignore gitignore files and include hidden entries",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum directory traversal depth (0 for unlimited)",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Include only files matching glob patterns (e.g., --include '**/*.go')",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "Exclude files matching glob patterns (e.g., --exclude '**/*.md')",
			},
			&cli.IntFlag{
				Name:  "omit-context",
				Usage: "Limit content around matches to this many characters; the match itself is always preserved",
			},
			&cli.IntFlag{
				Name:    "before-context",
				Aliases: []string{"B"},
				Usage:   "Number of lines to show before each match",
			},
			&cli.IntFlag{
				Name:    "after-context",
				Aliases: []string{"A"},
				Usage:   "Number of lines to show after each match",
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "Skip this many result lines after sorting",
			},
			&cli.IntFlag{
				Name:  "take",
				Usage: "Return at most this many result lines",
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
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: glint search <pattern> <directory>")
	}
	pattern := c.Args().Get(0)
	directory := c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := search.DefaultOptions()
	opts.CaseSensitive = c.Bool("case-sensitive") || cfg.CaseSensitive
	opts.RespectGitignore = !(c.Bool("no-ignore") || cfg.NoIgnore)
	opts.Depth = resolveDepth(c, cfg)
	opts.BeforeContext = c.Int("before-context")
	opts.AfterContext = c.Int("after-context")
	opts.OmitPathPrefix = c.String("strip-prefix")
	opts.Skip = c.Int("skip")

	if include := c.StringSlice("include"); len(include) > 0 {
		opts.IncludeGlob = include
	} else if len(cfg.Include) > 0 {
		opts.IncludeGlob = cfg.Include
	}
	if exclude := c.StringSlice("exclude"); len(exclude) > 0 {
		opts.ExcludeGlob = exclude
	} else if len(cfg.Exclude) > 0 {
		opts.ExcludeGlob = cfg.Exclude
	}
	if c.IsSet("omit-context") {
		n := c.Int("omit-context")
		opts.MatchContentOmitNum = &n
	}
	if c.IsSet("take") {
		n := c.Int("take")
		opts.Take = &n
	}

	result, err := search.Run(pattern, directory, opts, newLogger(c))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSearchResult(result)
	return nil
}

func printSearchResult(result *search.Result) {
	if len(result.Lines) == 0 {
		fmt.Println("No matches found.")
		return
	}

	matchCount := 0
	for _, line := range result.Lines {
		if !line.IsContext {
			matchCount++
		}
	}
	fmt.Printf("Found %d matches:\n", matchCount)

	dim := color.New(color.Faint)
	lastFile := ""
	lastLine := 0

	for _, line := range result.Lines {
		// Separator between discontinuous result runs.
		if lastFile != "" && (line.FilePath != lastFile || line.LineNumber > lastLine+1) {
			fmt.Println("--")
		}
		lastFile = line.FilePath
		lastLine = line.LineNumber

		if line.IsContext {
			dim.Printf("%s:%d- %s\n", line.FilePath, line.LineNumber, line.LineContent)
		} else {
			fmt.Printf("%s:%d: %s\n", line.FilePath, line.LineNumber, line.LineContent)
		}
	}
}
