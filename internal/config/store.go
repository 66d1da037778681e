// Package config stores local CLI defaults: backend base URL, default city
// and preferred output format.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultDirName  = ".datban"
	defaultFileName = "config.json"
	envConfigPath   = "DATBAN_CONFIG_PATH"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig is returned when the config payload is malformed.
	ErrInvalidConfig = errors.New("config file is invalid")
)

// Settings are the persisted CLI defaults.
type Settings struct {
	BaseURL       string `json:"base_url,omitempty"`
	DefaultCity   string `json:"default_city,omitempty"`
	DefaultFormat string `json:"default_format,omitempty"`
}

// Store loads and writes CLI settings.
type Store struct {
	path string
}

// NewStore creates a store using env overrides or defaults.
func NewStore() (*Store, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return &Store{path: path}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &Store{path: filepath.Join(home, defaultDirName, defaultFileName)}, nil
}

// NewStoreAt creates a store over an explicit path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads settings. A missing file yields ErrConfigNotFound; callers
// treat that as "all defaults".
func (s *Store) Load(_ context.Context) (Settings, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, ErrConfigNotFound
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	var settings Settings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return settings, nil
}

// Save writes settings.
func (s *Store) Save(_ context.Context, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
