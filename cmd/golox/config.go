package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configFileName = "golox.yaml"

type config struct {
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	DumpAST     bool   `yaml:"dump_ast"`
}

func defaultConfig() config {
	history := ".golox_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}
	return config{
		LogLevel:    "warning",
		Color:       true,
		Prompt:      "> ",
		HistoryFile: history,
	}
}

// loadConfig reads the configuration at path. With an empty path it tries
// ./golox.yaml and then ~/.golox.yaml, falling back to the defaults when
// neither exists.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func findConfig() string {
	candidates := []string{configFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+configFileName))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
