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
	Debug        bool           `mapstructure:"debug"`
	DevServerURL string         `mapstructure:"dev_server_url"`
	AppEntry     string         `mapstructure:"app_entry"`
	Main         MainConfig     `mapstructure:"main"`
	Settings     SettingsConfig `mapstructure:"settings"`
	Shutdown     ShutdownConfig `mapstructure:"shutdown"`
}

// MainConfig holds the primary window geometry.
type MainConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// SettingsConfig holds settings window behaviour.
type SettingsConfig struct {
	// Preload creates the settings window hidden at startup
	Preload bool `mapstructure:"preload"`
}

// ShutdownConfig holds exit sequence tuning.
type ShutdownConfig struct {
	GraceInterval time.Duration `mapstructure:"grace_interval"`
}

// SettingsRoute 设置页面的前端路由
const SettingsRoute = "#/settings"

// DefaultPath returns ~/.config/opalchat/config.toml.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(homeDir, ".config", "opalchat", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix OPALCHAT_.
// An empty path falls back to OPALCHAT_CONFIG, then DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("debug", debugBuild)
	v.SetDefault("dev_server_url", "http://localhost:1420")
	v.SetDefault("app_entry", "/index.html")
	v.SetDefault("main.title", "OpalChat")
	v.SetDefault("main.width", 800)
	v.SetDefault("main.height", 600)
	v.SetDefault("settings.preload", false)
	v.SetDefault("shutdown.grace_interval", "100ms")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("OPALCHAT_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("OPALCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
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

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Main.Width <= 0 || c.Main.Height <= 0 {
		return fmt.Errorf("invalid main window size %dx%d", c.Main.Width, c.Main.Height)
	}
	if c.Shutdown.GraceInterval <= 0 {
		return fmt.Errorf("invalid shutdown grace interval %v", c.Shutdown.GraceInterval)
	}
	if c.Debug && c.DevServerURL == "" {
		return errors.New("dev_server_url is required in debug mode")
	}
	return nil
}

// ContentURL returns where a window loads route from:
// the dev server in debug builds, the bundled entry otherwise.
func (c Config) ContentURL(route string) string {
	base := c.AppEntry
	if c.Debug {
		base = strings.TrimSuffix(c.DevServerURL, "/") + "/"
	}
	return base + route
}
