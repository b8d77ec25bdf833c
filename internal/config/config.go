package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds composer's runtime settings.
type Config struct {
	DataDir string
	Storage string
	Resume  bool
}

const (
	defaultConfigPath = "~/.config/composer/config.toml"
	defaultDataDir    = "~/.local/share/composer"
	defaultStorage    = "sqlite"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir: mustExpand(defaultDataDir),
		Storage: defaultStorage,
		Resume:  true,
	}
}

// Load parses the config at path, falling back to defaults when missing.
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
		DataDir string `toml:"data_dir"`
		Storage string `toml:"storage"`
		Resume  *bool  `toml:"resume"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}

	switch storage := strings.ToLower(strings.TrimSpace(raw.Storage)); storage {
	case "":
	case "sqlite", "file":
		cfg.Storage = storage
	default:
		return Config{}, fmt.Errorf("parse config: unknown storage %q", raw.Storage)
	}

	if raw.Resume != nil {
		cfg.Resume = *raw.Resume
	}

	return cfg, nil
}

// LogPath returns the file composer logs to.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/composer.log")
	}
	return filepath.Join(c.DataDir, "composer.log")
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
