package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agrmv/predict"
	"github.com/agrmv/predict/scanner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Config holds the settings of a parser run, read from a TOML file and
// overridden by command line flags.
type Config struct {
	Grammar    string            `toml:"grammar"`
	Source     string            `toml:"source"`
	Strict     bool              `toml:"strict"`
	Trace      string            `toml:"trace"`
	Tokens     bool              `toml:"tokens"`
	Sets       bool              `toml:"sets"`
	HTML       string            `toml:"html"`
	Categories map[string]string `toml:"categories"` // token kind name => terminal
}

func defaultConfig() Config {
	return Config{Trace: "Error"}
}

// loadConfig reads a TOML configuration file on top of the defaults.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return conf, fmt.Errorf("unknown configuration keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return conf, nil
}

// categoryMap merges the configured categories into the default mapping of
// token kinds to category terminals.
func (c Config) categoryMap() (map[predict.TokType]string, error) {
	categories := scanner.Categories()
	names := maps.Keys(c.Categories)
	slices.Sort(names)
	for _, name := range names {
		kind, ok := scanner.KindByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q in categories", name)
		}
		if c.Categories[name] == "" {
			delete(categories, kind)
			continue
		}
		categories[kind] = c.Categories[name]
	}
	return categories, nil
}
