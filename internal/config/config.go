package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	State StateConfig
	UI    UIConfig
	Log   LogConfig
}

// StateConfig holds persistence settings.
type StateConfig struct {
	Backend          string
	Path             string
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SidePanelWidth        int `mapstructure:"side_panel_width"`
	WindowWidth           int `mapstructure:"window_width"`
	Theme                 string
	TransparentBackground bool          `mapstructure:"transparent_background"`
	RepaintInterval       time.Duration `mapstructure:"repaint_interval"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path  string
	Level string
}

// Path returns the config file location. DEMOHOST_CONFIG overrides the default.
func Path() string {
	if p := os.Getenv("DEMOHOST_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "demohost", "config.toml")
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("state.backend", "sqlite")
	v.SetDefault("state.path", filepath.Join(home, ".local", "share", "demohost", "demohost.db"))
	v.SetDefault("state.autosave_interval", 30*time.Second)
	v.SetDefault("ui.side_panel_width", 32)
	v.SetDefault("ui.window_width", 44)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.transparent_background", true)
	v.SetDefault("ui.repaint_interval", 100*time.Millisecond)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "demohost", "demohost.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix DEMOHOST_.
// An explicit path takes precedence over DEMOHOST_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("DEMOHOST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("state.backend", cfg.State.Backend)
	v.Set("state.path", cfg.State.Path)
	v.Set("state.autosave_interval", cfg.State.AutosaveInterval.String())
	v.Set("ui.side_panel_width", cfg.UI.SidePanelWidth)
	v.Set("ui.window_width", cfg.UI.WindowWidth)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.transparent_background", cfg.UI.TransparentBackground)
	v.Set("ui.repaint_interval", cfg.UI.RepaintInterval.String())
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
