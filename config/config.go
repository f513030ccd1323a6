// Package config loads the REPL/CLI host's ambient settings — banner
// text, prompt, color on/off, and the maximum call depth a runaway
// recursive Lox program is allowed before the host aborts it — from an
// optional YAML file with environment-variable overrides.
//
// This is ambient host configuration, not a language feature: the
// scanner/parser/resolver/interpreter never see a Config value. The
// file+env-override shape mirrors mna-nenuphar's use of
// caarlos0/env/v6 for its own CLI configuration.
package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds the host's adjustable settings.
type Config struct {
	Banner       string `yaml:"banner" env:"PLOX_BANNER"`
	Prompt       string `yaml:"prompt" env:"PLOX_PROMPT"`
	Version      string `yaml:"version" env:"PLOX_VERSION"`
	Color        bool   `yaml:"color" env:"PLOX_COLOR"`
	MaxCallDepth int    `yaml:"max_call_depth" env:"PLOX_MAX_CALL_DEPTH"`
}

// Default returns the built-in configuration a fresh install starts
// with, before any file or environment override is applied.
func Default() Config {
	return Config{
		Banner:       "plox",
		Prompt:       "plox> ",
		Version:      "0.1.0",
		Color:        true,
		MaxCallDepth: 1000,
	}
}

// Load builds a Config starting from Default, layering in path's YAML
// contents (if path is non-empty and the file exists) and then any
// PLOX_* environment variables, in that precedence order — file
// overrides the built-in default, environment overrides the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
