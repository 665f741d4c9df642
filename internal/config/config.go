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

	"github.com/five82/booklist/internal/books"
)

// Config holds the settings booklist reads from config.toml.
type Config struct {
	APIURL         string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	LogDir         string
	LogLevel       string
	InitialQuery   string
}

const (
	defaultConfigPath = "~/.config/booklist/config.toml"
	defaultLogDir     = "~/.local/share/booklist/logs"
	defaultLogLevel   = "info"
	logFileName       = "booklist.log"
)

// fileConfig mirrors the TOML keys. Durations are strings such as "15s".
type fileConfig struct {
	APIURL         string `toml:"api_url"`
	ConnectTimeout string `toml:"connect_timeout"`
	ReadTimeout    string `toml:"read_timeout"`
	LogDir         string `toml:"log_dir"`
	LogLevel       string `toml:"log_level"`
	InitialQuery   string `toml:"initial_query"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         books.DefaultEndpoint,
		ConnectTimeout: books.DefaultConnectTimeout,
		ReadTimeout:    books.DefaultReadTimeout,
		LogDir:         mustExpand(defaultLogDir),
		LogLevel:       defaultLogLevel,
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default location). A missing file
// yields Default(); blank values fall back to their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.InitialQuery = strings.TrimSpace(raw.InitialQuery)

	var err error
	if cfg.ConnectTimeout, err = parseTimeout("connect_timeout", raw.ConnectTimeout, cfg.ConnectTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ReadTimeout, err = parseTimeout("read_timeout", raw.ReadTimeout, cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseTimeout(key, raw string, fallback time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse config: %s must be positive, got %s", key, raw)
	}
	return d, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
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
