package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = ".rulsp.yaml"

// config tunes the CLI only; the interpreter core takes no configuration.
type config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history"`
	Color       bool     `yaml:"color"`
	Preload     []string `yaml:"preload"`
}

func defaultConfig() config {
	return config{
		Prompt:      "=> ",
		HistoryFile: "~/.rulsp_history",
		Color:       true,
	}
}

// loadConfig reads ~/.rulsp.yaml when present. A missing file is normal;
// an unreadable or malformed one falls back to defaults silently (the
// REPL must come up regardless).
func loadConfig() config {
	cfg := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	raw, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}
