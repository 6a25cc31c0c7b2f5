package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Built-in defaults, the lowest tier of the flag > file > default
// precedence chain.
const (
	DefaultWidth      = 80
	DefaultDateFormat = "2006-01-02"
)

// Config mirrors the report configuration file. Every CLI option name
// is a valid key, with dashes written as underscores. Optional fields
// are pointers so "set to the default value" and "not set" stay
// distinguishable during precedence resolution.
type Config struct {
	Repos      []string `yaml:"repos"`
	User       *string  `yaml:"user"`
	Width      *int     `yaml:"width"`
	Reverse    *bool    `yaml:"reverse"`
	DateFormat *string  `yaml:"date_format"`
	Since      *string  `yaml:"since"`
	Before     *string  `yaml:"before"`
	On         *string  `yaml:"on"`
}

// Load reads and validates the configuration file. The repos key is
// required and must name at least one repository.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Repos) == 0 {
		return nil, fmt.Errorf("config %s: missing required key %q", path, "repos")
	}

	return &cfg, nil
}

// DefaultPath resolves the well-known config location from an
// environment lookup function, keeping path resolution free of
// ambient filesystem state.
func DefaultPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wh", "config.yml")
	}
	return filepath.Join(getenv("HOME"), ".config", "wh", "config.yml")
}

// ExpandRepos resolves configured repository entries in list order:
// ~ expansion first, then glob expansion for entries with pattern
// metacharacters. A pattern matching nothing is a configuration
// error; literal paths pass through and are validated when the
// repository is opened.
func ExpandRepos(repos []string, home string) ([]string, error) {
	expanded := make([]string, 0, len(repos))

	for _, entry := range repos {
		path, err := expandHome(entry, home)
		if err != nil {
			return nil, err
		}

		if !strings.ContainsAny(path, "*?[{") {
			expanded = append(expanded, path)
			continue
		}

		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("bad repos pattern %q: %w", entry, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("repos pattern %q matched nothing", entry)
		}
		expanded = append(expanded, matches...)
	}

	return expanded, nil
}

func expandHome(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", fmt.Errorf("cannot expand %q: home directory unknown", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
