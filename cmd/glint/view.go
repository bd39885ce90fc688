package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/glintsearch/glint/internal/view"
)

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "View file contents",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "max-size",
				Usage: "Maximum file size in bytes (0 for unlimited)",
				Value: view.DefaultMaxSize,
			},
			&cli.IntFlag{
				Name:  "line-from",
				Usage: "Start viewing from this line number (1-based, inclusive)",
			},
			&cli.IntFlag{
				Name:  "line-to",
				Usage: "End viewing at this line number (1-based, inclusive)",
			},
		},
		Action: runView,
	}
}

func runView(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: glint view <file>")
	}
	path := c.Args().Get(0)

	opts := view.Options{
		MaxSize:  c.Int64("max-size"),
		LineFrom: c.Int("line-from"),
		LineTo:   c.Int("line-to"),
	}

	result, err := view.Run(path, opts, nil)
	if err != nil {
		return err
	}

	switch result.Contents.Type {
	case "text":
		for _, line := range result.Contents.Content.LineContents {
			fmt.Printf("%s:%d:%s\n", result.FilePath, line.LineNumber, line.Line)
		}
	default:
		fmt.Printf("%s: %s\n", result.FilePath, result.Contents.Message)
	}
	return nil
}
