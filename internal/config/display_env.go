package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/1broseidon/wincfg/internal/platform"
)

var (
	getenvFn = os.Getenv
	setenvFn = os.Setenv
)

// BackendOptions returns the options for opening the window backend. An
// exported DISPLAY or XAUTHORITY wins over the config file; a configured
// xauthority is exported when the environment has none.
func (c *Config) BackendOptions() (platform.Options, error) {
	display := ""
	if strings.TrimSpace(getenvFn("DISPLAY")) == "" {
		display = strings.TrimSpace(c.Display)
	}

	xauthority := strings.TrimSpace(c.XAuthority)
	if strings.TrimSpace(getenvFn("XAUTHORITY")) == "" && xauthority != "" {
		if err := setenvFn("XAUTHORITY", xauthority); err != nil {
			return platform.Options{}, fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}

	return platform.Options{
		Display:    display,
		TitleLimit: c.TitleMaxLength,
	}, nil
}
