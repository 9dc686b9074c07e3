package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Admin   AdminConfig   `mapstructure:"admin"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AdminConfig holds the header copy.
type AdminConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// SessionConfig holds the signed-in identity. Empty User means signed out.
type SessionConfig struct {
	User string `mapstructure:"user"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DeleteDelay           time.Duration `mapstructure:"delete_delay"`
	ToastDuration         time.Duration `mapstructure:"toast_duration"`
	ActivityToastDuration time.Duration `mapstructure:"activity_toast_duration"`
	MaxToasts             int           `mapstructure:"max_toasts"`
	Scene                 string        `mapstructure:"scene"`
}

// LogConfig holds log sink settings. An empty Path discards logs.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the Prometheus endpoint. Empty ListenAddr disables it.
type MetricsConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("admin.name", "HELPIE Admin")
	v.SetDefault("admin.description", "Centralized Service Provider and Activity Management Panel.")
	v.SetDefault("session.user", os.Getenv("USER"))
	v.SetDefault("ui.delete_delay", "800ms")
	v.SetDefault("ui.toast_duration", "2500ms")
	v.SetDefault("ui.activity_toast_duration", "3500ms")
	v.SetDefault("ui.max_toasts", 5)
	v.SetDefault("ui.scene", "GLppA6onwN7gQhEs")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.listen_addr", "")
}

// Load reads configuration from file and env. Env var overrides use prefix HELPIE_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HELPIE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "helpie"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HELPIE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit HELPIE_CONFIG must exist, the home path is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the panel cannot run with.
func (c Config) Validate() error {
	if c.UI.DeleteDelay < 0 {
		return fmt.Errorf("ui.delete_delay must not be negative, got %s", c.UI.DeleteDelay)
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive, got %s", c.UI.ToastDuration)
	}
	if c.UI.ActivityToastDuration <= 0 {
		return fmt.Errorf("ui.activity_toast_duration must be positive, got %s", c.UI.ActivityToastDuration)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
