package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ihincks/what-happened/config"
	"github.com/ihincks/what-happened/internal/git"
	"github.com/ihincks/what-happened/internal/report"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "wh",
		Usage:     "Aggregate commit history across repositories into one report",
		ArgsUsage: "[config]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "only include commits by this author",
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "wrap width for subjects and bodies",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "sort newest first",
			},
			&cli.StringFlag{
				Name:  "date-format",
				Usage: "date column layout (Go reference time)",
			},
			&cli.StringFlag{
				Name:  "since",
				Usage: "only include commits after this date",
			},
			&cli.StringFlag{
				Name:  "before",
				Usage: "only include commits before this date",
			},
			&cli.StringFlag{
				Name:  "on",
				Usage: "report a single calendar day (overrides since/before)",
			},
		},
		Action: reportAction,
	}
}

func reportAction(c *cli.Context) error {
	configPath := c.Args().First()
	if configPath == "" {
		configPath = config.DefaultPath(os.Getenv)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(c, cfg, os.Stdout)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	repos, err := config.ExpandRepos(cfg.Repos, home)
	if err != nil {
		return err
	}

	return runReport(c.Context, repos, opts, os.Stdout)
}

// runReport drives the fetch, normalize, merge/sort, layout, render
// pipeline. Repositories are processed sequentially in configured
// order; the first failure aborts the whole report.
func runReport(ctx context.Context, repos []string, opts Options, out io.Writer) error {
	widths := report.NewWidths(opts.User != "")
	batches := make([][]report.Record, 0, len(repos))

	for _, repoPath := range repos {
		name, err := git.DisplayName(repoPath)
		if err != nil {
			return err
		}

		raw, err := git.ReadLog(ctx, git.LogOptions{
			RepoPath: repoPath,
			Author:   opts.User,
			Since:    opts.Since,
			Before:   opts.Before,
		})
		if err != nil {
			return err
		}

		batch, err := report.Normalize(raw, name, opts.DateFormat, &widths)
		if err != nil {
			return err
		}
		batches = append(batches, batch)
	}

	records := report.Merge(batches...)
	if len(records) == 0 {
		return nil
	}
	report.SortByTime(records, opts.Reverse)

	renderer := report.NewRenderer(out, report.NewLayout(widths), opts.Width)
	return renderer.Render(records)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
