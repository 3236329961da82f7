package config

// RawConfig mirrors Config with optional fields so a file only overrides the
// keys it sets.
type RawConfig struct {
	Display        *string     `yaml:"display"`
	XAuthority     *string     `yaml:"xauthority"`
	TitleMaxLength *int        `yaml:"title_max_length"`
	LogLevel       *string     `yaml:"log_level"`
	Restore        *RawRestore `yaml:"restore"`
}

type RawRestore struct {
	ApplySize *bool `yaml:"apply_size"`
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.XAuthority != nil {
		cfg.XAuthority = *raw.XAuthority
	}
	if raw.TitleMaxLength != nil {
		cfg.TitleMaxLength = *raw.TitleMaxLength
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Restore != nil && raw.Restore.ApplySize != nil {
		cfg.Restore.ApplySize = *raw.Restore.ApplySize
	}
	return cfg
}
