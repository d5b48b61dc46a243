// Package config loads the console's typed configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SECUREBANK_BACKEND_BASE_URL.
const EnvPrefix = "SECUREBANK"

// Themes the console knows how to render.
const (
	ThemeDefault    = "default"
	ThemeCatppuccin = "catppuccin"
)

// Config materialises application configuration.
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Journal JournalConfig `mapstructure:"journal"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig covers the fraud-detection service connection.
type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// JournalConfig controls the local call journal.
type JournalConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// ConsoleConfig shapes the interactive console.
type ConsoleConfig struct {
	Theme       string   `mapstructure:"theme"`
	Models      []string `mapstructure:"models"`
	FetchModels bool     `mapstructure:"fetch_models"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load builds configuration from file, environment, and defaults. An empty path searches
// the working directory and ~/.config/securebank for config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()
	return LoadWith(v, path)
}

// LoadWith is Load on a caller-supplied viper instance, so flags bound to v take part.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(ExpandPath(path))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ExpandPath("~/.config/securebank"))
	}

	if err := readConfig(v, path != ""); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Journal.Path = ExpandPath(cfg.Journal.Path)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper, explicit bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if explicit {
			return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.base_url", "http://localhost:5001")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("backend.user_agent", "securebank-console/"+Version)

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", "~/.config/securebank/journal.db")

	v.SetDefault("console.theme", ThemeDefault)
	v.SetDefault("console.models", []string{"logistic_regression", "rvm", "random_forest"})
	v.SetDefault("console.fetch_models", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "~/.config/securebank/console.log")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || c.Backend.BaseURL == "" {
		return fmt.Errorf("%w: backend.base_url %q is not a URL", common.ErrInvalidConfig, c.Backend.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: backend.base_url must use http or https, got %q", common.ErrInvalidConfig, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: backend.base_url has no host", common.ErrInvalidConfig)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("%w: backend.timeout cannot be negative", common.ErrInvalidConfig)
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("%w: journal.path", common.ErrMissingConfig)
	}

	switch c.Console.Theme {
	case ThemeDefault, ThemeCatppuccin:
	default:
		return fmt.Errorf("%w: unknown console.theme %q", common.ErrInvalidConfig, c.Console.Theme)
	}

	if len(c.Console.Models) == 0 {
		return fmt.Errorf("%w: console.models must name at least one model", common.ErrInvalidConfig)
	}
	for _, name := range c.Console.Models {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: console.models contains an empty name", common.ErrInvalidConfig)
		}
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
