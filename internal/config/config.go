package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	Destination string `mapstructure:"destination"`
	LogFile     string `mapstructure:"log_file"`
}

// FetchConfig controls the download-and-extract run
type FetchConfig struct {
	IncludeOldVersions bool   `mapstructure:"include_old_versions"`
	ExpandCommand      string `mapstructure:"expand_command"`
	HTTPTimeoutSeconds int    `mapstructure:"http_timeout_seconds"`
	Progress           bool   `mapstructure:"progress"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	// Set config name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// Add config paths
	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "vcfetch"))
	}
	viper.AddConfigPath(".")

	// Set defaults
	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("VCFETCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand paths
	cfg.Paths.Destination = expandPath(cfg.Paths.Destination)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("paths.destination", DefaultDestination())
	viper.SetDefault("paths.log_file", defaultLogFile())

	viper.SetDefault("fetch.include_old_versions", false)
	viper.SetDefault("fetch.expand_command", "expand")
	viper.SetDefault("fetch.http_timeout_seconds", 600)
	viper.SetDefault("fetch.progress", true)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// DefaultDestination is the historical runtime mirror location on Windows,
// or a home-relative equivalent elsewhere.
func DefaultDestination() string {
	if runtime.GOOS == "windows" {
		return `D:\Microsoft\Runtimes`
	}
	return filepath.Join(homeDir(), "Microsoft", "Runtimes")
}

func defaultLogFile() string {
	return filepath.Join(homeDir(), ".local", "share", "vcfetch", "vcfetch.log")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		home = "."
	}
	return home
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}
