package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/address-book-bot/pkg/dateutil"
	"go.uber.org/zap/zapcore"
)

// Prompt modes
const (
	PromptAuto   = "auto"   // print the prompt only when stdin is a terminal
	PromptAlways = "always"
	PromptNever  = "never"
)

// Config represents application configuration
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Bot   BotConfig   `mapstructure:"bot"`
	Clock ClockConfig `mapstructure:"clock"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File       string `mapstructure:"file"` // empty logs JSON to stderr
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// BotConfig represents the interactive loop configuration
type BotConfig struct {
	Prompt     string `mapstructure:"prompt"`
	PromptMode string `mapstructure:"prompt_mode"`
}

// ClockConfig allows pinning "today" for the birthdays command
type ClockConfig struct {
	Today string `mapstructure:"today"` // DD.MM.YYYY, empty means the system date
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("bot.prompt", "Enter a command: ")
	v.SetDefault("bot.prompt_mode", PromptAuto)
	v.SetDefault("clock.today", "")
}

// Load loads configuration from file and ADDRESS_BOOK_* environment variables.
// An explicit configPath must exist; without one a missing config.yaml is fine.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.address-book-bot")
		v.AddConfigPath("/etc/address-book-bot")
	}

	// Read environment variables
	v.SetEnvPrefix("ADDRESS_BOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level %q is not a valid level", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}

	switch c.Bot.PromptMode {
	case PromptAuto, PromptAlways, PromptNever:
	default:
		return fmt.Errorf("bot.prompt_mode must be '%s', '%s' or '%s', got '%s'",
			PromptAuto, PromptAlways, PromptNever, c.Bot.PromptMode)
	}

	if c.Clock.Today != "" {
		if _, err := c.Clock.GetToday(); err != nil {
			return fmt.Errorf("clock.today: %w", err)
		}
	}

	return nil
}

// GetLevel returns the zap level, falling back to warn
func (c *LogConfig) GetLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// GetToday returns the pinned date, or the system date when none is set
func (c *ClockConfig) GetToday() (time.Time, error) {
	if c.Today == "" {
		return dateutil.Today(), nil
	}
	return dateutil.ParseDate(c.Today)
}

// ShowPrompt reports whether the prompt should be printed
func (c *BotConfig) ShowPrompt(interactive bool) bool {
	switch c.PromptMode {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	default:
		return interactive
	}
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}
