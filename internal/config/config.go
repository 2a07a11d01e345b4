// Package config holds run settings: built-in defaults, overridden by an
// optional config.json in the data directory, overridden by flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfixture/internal/airport"
	"github.com/zarlcorp/zfixture/internal/output"
	"github.com/zarlcorp/zfixture/internal/pipeline"
)

const configFile = "config.json"

// Config is the full set of run settings.
type Config struct {
	Users       int    `json:"users"`
	Layovers    int    `json:"layovers"`
	Format      string `json:"format"`
	AirportsURL string `json:"airports_url"`
	LogLevel    string `json:"log_level"`
}

// Default returns the settings of a plain run.
func Default() Config {
	return Config{
		Users:       pipeline.DefaultUsers,
		Layovers:    pipeline.DefaultLayovers,
		Format:      string(output.FormatComma),
		AirportsURL: airport.DefaultURL,
		LogLevel:    "info",
	}
}

// Load reads config.json from fsys over the defaults. A missing file is not
// an error. Fields absent from the file keep their default.
func Load(fsys zfilesystem.ReadWriteFileFS) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config: read: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg as config.json.
func Save(fsys zfilesystem.ReadWriteFileFS, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("save config: marshal: %w", err)
	}
	if err := fsys.WriteFile(configFile, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("save config: write: %w", err)
	}
	return nil
}

// Validate checks counts, format and log level.
func (c Config) Validate() error {
	if c.Users < 0 {
		return fmt.Errorf("users must not be negative, got %d", c.Users)
	}
	if c.Layovers < 0 {
		return fmt.Errorf("layovers must not be negative, got %d", c.Layovers)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the parsed format, defaulting to comma.
func (c Config) OutputFormat() output.Format {
	f, err := output.ParseFormat(c.Format)
	if err != nil {
		return output.FormatComma
	}
	return f
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel maps debug, info, warn and error to slog levels. An empty
// string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
