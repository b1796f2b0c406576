package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/graphfin/internal/model"
	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

// cliConfig holds dashboard configuration after merging defaults, config
// file, environment and flags.
type cliConfig struct {
	Skin               string `mapstructure:"skin"`
	Locale             string `mapstructure:"locale"`
	StartTab           string `mapstructure:"start-tab"`
	ShowCode           bool   `mapstructure:"show-code"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	LogLevel           string `mapstructure:"log-level"`
	ExportPath         string `mapstructure:"export-path"`

	// ConfigDir holds the skins/ directory.
	ConfigDir string `mapstructure:"-"`

	startTab registry.ChartID
	locale   *registry.Formatter
	logLevel slog.Level
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"skin":      "skin",
	"locale":    "locale",
	"tab":       "start-tab",
	"show-code": "show-code",
	"output":    "export-path",
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "graphfin"), nil
}

func loadCLIConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	configDir, err := defaultConfigDir()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("GRAPHFIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("locale", model.DefaultLocale)
	v.SetDefault("start-tab", model.DefaultStartTab)
	v.SetDefault("show-code", false)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("export-path", model.DefaultExportPath)

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &configFileNotFound) || os.IsNotExist(err)
		if !missing || configPath != "" {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigDir = configDir

	if err := cfg.resolve(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolve parses the string settings into their typed forms.
func (c *cliConfig) resolve() error {
	id, err := registry.ParseChartID(c.StartTab)
	if err != nil {
		return fmt.Errorf("invalid start-tab: %w", err)
	}
	c.startTab = id

	tag, err := registry.ParseLocale(c.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}
	c.locale = registry.NewFormatter(tag)

	if err := c.logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log-level %q: %w", c.LogLevel, err)
	}
	return nil
}

// initialState is the view state the dashboard opens with.
func (c cliConfig) initialState() viewstate.State {
	return viewstate.State{ActiveTab: c.startTab, ShowCode: c.ShowCode}
}
