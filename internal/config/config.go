package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output modes accepted by the output key.
const (
	OutputText     = "text"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// ThemeConfig holds theme selection and color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Output     string      `mapstructure:"output"`
	RangeCount int         `mapstructure:"range_count"`
	RangeStep  int         `mapstructure:"range_step"`
	Theme      ThemeConfig `mapstructure:"theme"`
}

// DefaultConfigDir returns the default config directory (~/.dayshift/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dayshift")
	}
	return filepath.Join(home, ".dayshift")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", OutputText)
	v.SetDefault("range_count", 7)
	v.SetDefault("range_step", 1)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.markdown_style", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "dayshift"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// DAYSHIFT_OUTPUT, DAYSHIFT_RANGE_COUNT, DAYSHIFT_THEME_PRESET, ...
	v.SetEnvPrefix("DAYSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A missing default file is fine, an explicit one is not.
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be normalised silently.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("unknown output mode: %q", c.Output)
	}
	if c.RangeCount <= 0 {
		return fmt.Errorf("range_count must be positive, got %d", c.RangeCount)
	}
	return nil
}
