package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/wincfg/internal/platform"
)

// Restore configures the restore command.
type Restore struct {
	// ApplySize also resizes windows to the stored rectangle. Off by default:
	// restore only moves windows.
	ApplySize bool `yaml:"apply_size"`
}

// Config is the effective configuration.
type Config struct {
	Display        string  `yaml:"display,omitempty"`
	XAuthority     string  `yaml:"xauthority,omitempty"`
	TitleMaxLength int     `yaml:"title_max_length"` // 0 = unlimited
	LogLevel       string  `yaml:"log_level"`
	Restore        Restore `yaml:"restore"`
}

// ValidationError points at the offending config key.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func DefaultConfig() *Config {
	return &Config{
		TitleMaxLength: platform.DefaultTitleLimit,
		LogLevel:       "warn",
	}
}

func (c *Config) Validate() error {
	if c.TitleMaxLength < 0 {
		return &ValidationError{Path: "title_max_length", Err: fmt.Errorf("title_max_length must be >= 0")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// SlogLevel returns the configured level, or warn if it does not parse.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
