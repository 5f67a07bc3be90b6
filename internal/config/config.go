// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/10Draken01/Docker-Front/internal/model"
)

// DefaultAPIURL is the compiled-in origin of the roster API.
const DefaultAPIURL = "https://blocksolution.eduartrob.com/api"

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = "./data/config.json"
)

// Default returns the configuration written on first run.
func Default() *model.Config {
	return &model.Config{
		APIURL:       DefaultAPIURL,
		HTTPTimeout:  30 * time.Second,
		LogFolder:    "./logs",
		CommandLog:   "commands.log",
		ErrorLog:     "errors.log",
		InfoLog:      "info.log",
		HistoryFile:  "./data/history",
		UseColor:     true,
		MessageTTL:   3 * time.Second,
		StubAddr:     "127.0.0.1:8080",
		DatabaseDir:  "./data",
		DatabaseFile: "roster.db",
	}
}

// SetPath changes the location of the configuration file.
func SetPath(path string) {
	configPath = path
}

// ConfigLoad loads the configuration from the JSON file and applies
// environment overrides. If the file doesn't exist, it creates a default
// configuration.
func ConfigLoad() error {
	cfg, err := load(configPath)
	if err != nil {
		return err
	}
	if err := applyEnv(cfg); err != nil {
		return err
	}
	currentConfig = cfg
	return nil
}

func load(path string) (*model.Config, error) {
	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Missing keys keep their defaults
	cfg := Default()
	if err := json.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays GUILD_* environment variables onto cfg.
func applyEnv(cfg *model.Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if cfg.NoColor {
		cfg.UseColor = false
	}
	return nil
}

// ConfigSave saves the provided configuration to the JSON file.
func ConfigSave(cfg *model.Config) error {
	return save(configPath, cfg)
}

func save(path string, cfg *model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *model.Config {
	return currentConfig
}
