// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/quellen/quill/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // [editor] table
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	HistoryLimit    int  `toml:"history_limit"`
	PageLines       int  `toml:"page_lines"`
	SystemClipboard bool `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // empty means default path logic applies
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			HistoryLimit:    DefaultHistoryLimit,
			PageLines:       DefaultPageLines,
			SystemClipboard: SystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error.
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // 0 is allowed
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.HistoryLimit <= 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.PageLines <= 0 {
		c.Editor.PageLines = defaults.Editor.PageLines
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, flag overrides, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// The logger isn't initialized during initial load, so stay quiet.
		verbose := false

		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, AppName, DefaultConfigFileName)
			} else {
				effectivePath = ""
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.TabWidth > 0 {
					cfg.Editor.TabWidth = fileCfg.Editor.TabWidth
				}
				if fileCfg.Editor.ScrollOff >= 0 {
					cfg.Editor.ScrollOff = fileCfg.Editor.ScrollOff
				}
				if fileCfg.Editor.HistoryLimit > 0 {
					cfg.Editor.HistoryLimit = fileCfg.Editor.HistoryLimit
				}
				if fileCfg.Editor.PageLines > 0 {
					cfg.Editor.PageLines = fileCfg.Editor.PageLines
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg, verbose)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
