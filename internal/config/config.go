package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures skyboard's runtime settings.
type Config struct {
	Endpoint       string
	PollInterval   time.Duration
	MaxFlights     int
	RequestTimeout time.Duration
	Theme          string
	LogDir         string
}

const (
	defaultConfigPath     = "~/.config/skyboard/config.toml"
	defaultEndpoint       = "https://opensky-network.org/api/states/all"
	defaultPollInterval   = 15 * time.Second
	defaultMaxFlights     = 50
	defaultRequestTimeout = 10 * time.Second
	defaultTheme          = "Nightfox"
	defaultLogDir         = "~/.local/state/skyboard"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:       defaultEndpoint,
		PollInterval:   defaultPollInterval,
		MaxFlights:     defaultMaxFlights,
		RequestTimeout: defaultRequestTimeout,
		Theme:          defaultTheme,
		LogDir:         mustExpand(defaultLogDir),
	}
}

// Load locates and parses the skyboard config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint              string `toml:"endpoint"`
		PollSeconds           int    `toml:"poll_seconds"`
		MaxFlights            int    `toml:"max_flights"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		Theme                 string `toml:"theme"`
		LogDir                string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.MaxFlights > 0 {
		cfg.MaxFlights = raw.MaxFlights
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if logDir := strings.TrimSpace(raw.LogDir); logDir != "" {
		cfg.LogDir = mustExpand(logDir)
	}

	return cfg, nil
}

// LogPath returns the path to the diagnostics log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/skyboard.log")
	}
	return filepath.Join(c.LogDir, "skyboard.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
