// Package config provides configuration management for wallpick.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	Directory    string             `toml:"directory"`
	Suffixes     []string           `toml:"suffixes"`
	LogLevel     string             `toml:"log_level"`
	Commands     CommandsConfig     `toml:"commands"`
	Notification NotificationConfig `toml:"notification"`
}

// NotificationConfig описва desktop нотификациите
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"`
	Timeout        int    `toml:"timeout"`
	Urgency        string `toml:"urgency"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// NotificationConfigFile е за четене от TOML (с pointers за optional полета)
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	Urgency        *string `toml:"urgency"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	Directory    *string                `toml:"directory"`
	Suffixes     *[]string              `toml:"suffixes"`
	LogLevel     *string                `toml:"log_level"`
	Commands     CommandsConfig         `toml:"commands"`
	Notification NotificationConfigFile `toml:"notification"`
}

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "wallpick", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/wallpick/config.toml"
}

// Load зарежда config с merge на defaults + user config.
// A non-empty path is loaded instead of the user and system files and,
// unlike them, must exist and parse.
func Load(path string) (*Config, error) {
	// 1. Зареди defaults
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Explicit path
	if path != "" {
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	// 3. Опитай да заредиш user config
	userConfigPath := GetUserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		userCfg, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			return defaultCfg, nil
		}
		return mergeConfigs(defaultCfg, userCfg), nil
	}

	// 4. Опитай да заредиш system config
	systemConfigPath := GetSystemConfigPath()
	if _, err := os.Stat(systemConfigPath); err == nil {
		systemCfg, err := loadConfigFromFile(systemConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load system config: %v\n", err)
			return defaultCfg, nil
		}
		return mergeConfigs(defaultCfg, systemCfg), nil
	}

	// 5. Няма user/system config - използвай defaults
	return defaultCfg, nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if userCfg.Directory != nil && *userCfg.Directory != "" {
		merged.Directory = *userCfg.Directory
	}

	// Празен списък изключва филтъра
	if userCfg.Suffixes != nil {
		merged.Suffixes = append([]string{}, (*userCfg.Suffixes)...)
	}

	if userCfg.LogLevel != nil && *userCfg.LogLevel != "" {
		merged.LogLevel = *userCfg.LogLevel
	}

	merged.Commands = mergeCommands(defaultCfg.Commands, userCfg.Commands)

	mergeNotificationConfig(&merged.Notification, &userCfg.Notification)

	return &merged
}

// mergeNotificationConfig мерджва notification конфигурация
func mergeNotificationConfig(merged *NotificationConfig, user *NotificationConfigFile) {
	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil && *user.Tool != "" {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil && *user.Urgency != "" {
		merged.Urgency = *user.Urgency
	}
	if user.ShowInTerminal != nil {
		merged.ShowInTerminal = *user.ShowInTerminal
	}
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	// Създай директорията
	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Запиши default config
	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
