package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ihincks/what-happened/config"
	"github.com/ihincks/what-happened/internal/dates"
	"github.com/urfave/cli/v2"
)

// Options is the fully resolved parameter bundle for one report run.
// Since and Before hold git-ready window arguments.
type Options struct {
	User       string
	Width      int
	Reverse    bool
	DateFormat string
	Since      string
	Before     string
}

// flagSource is the subset of cli.Context consulted during option
// resolution. IsSet carries flag presence, so an explicitly passed
// default value still wins over the config file.
type flagSource interface {
	String(name string) string
	Int(name string) int
	Bool(name string) bool
	IsSet(name string) bool
}

var _ flagSource = (*cli.Context)(nil)

// resolveOptions merges the three configuration tiers (CLI flag over
// config file over built-in default) and resolves the report window.
// warnings receives the notice printed when --on displaces explicit
// since/before bounds.
func resolveOptions(c flagSource, cfg *config.Config, warnings io.Writer) (Options, error) {
	opts := Options{
		User:       stringOption(c, "user", cfg.User, ""),
		Width:      intOption(c, "width", cfg.Width, config.DefaultWidth),
		Reverse:    boolOption(c, "reverse", cfg.Reverse, false),
		DateFormat: stringOption(c, "date-format", cfg.DateFormat, config.DefaultDateFormat),
	}

	since := stringOption(c, "since", cfg.Since, "")
	before := stringOption(c, "before", cfg.Before, "")
	on := stringOption(c, "on", cfg.On, "")

	if on == "" {
		opts.Since = dates.GitArg(since)
		opts.Before = dates.GitArg(before)
		return opts, nil
	}

	if since != "" || before != "" {
		// Not fatal: the single-day window is the more specific request.
		fmt.Fprintln(warnings, color.YellowString(
			"warning: --on overrides --since/--before; reporting %s only", on))
	}

	start, end, err := dates.DayWindow(on)
	if err != nil {
		return Options{}, fmt.Errorf("invalid --on date: %w", err)
	}
	opts.Since = dates.Unix(start)
	opts.Before = dates.Unix(end)

	return opts, nil
}

func stringOption(c flagSource, name string, fromFile *string, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	if fromFile != nil {
		return *fromFile
	}
	return fallback
}

func intOption(c flagSource, name string, fromFile *int, fallback int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	if fromFile != nil {
		return *fromFile
	}
	return fallback
}

func boolOption(c flagSource, name string, fromFile *bool, fallback bool) bool {
	if c.IsSet(name) {
		return c.Bool(name)
	}
	if fromFile != nil {
		return *fromFile
	}
	return fallback
}
