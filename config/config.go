package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Search  SearchConfig
	Cache   CacheConfig
	Rate    RateLimitConfig
	Log     LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the fixed catalog file paths used by the merge
// build step and the server.
type CatalogConfig struct {
	InputPath  string `mapstructure:"input_path"`
	BackupPath string `mapstructure:"backup_path"`
	MergedPath string `mapstructure:"merged_path"`
}

// SearchConfig holds search engine configuration
type SearchConfig struct {
	Mode            string `mapstructure:"mode"` // "relevance" or "fuzzy"
	MinQueryLength  int    `mapstructure:"min_query_length"`
	MaxEditDistance int    `mapstructure:"max_edit_distance"`
	PageSize        int    `mapstructure:"page_size"`
	Debug           bool   `mapstructure:"debug"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bazarly/")

	// Environment variable settings
	v.SetEnvPrefix("BAZARLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults: the merge step reads input_path and writes
	// backup_path + merged_path; the server serves merged_path.
	v.SetDefault("catalog.input_path", "data/products.json")
	v.SetDefault("catalog.backup_path", "data/products-backup.json")
	v.SetDefault("catalog.merged_path", "data/products-merged.json")

	// Search defaults
	v.SetDefault("search.mode", "relevance")
	v.SetDefault("search.min_query_length", 3)
	v.SetDefault("search.max_edit_distance", 1)
	v.SetDefault("search.page_size", 24)
	v.SetDefault("search.debug", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")

	// Rate limit defaults
	v.SetDefault("rate.per_ip", 25)
	v.SetDefault("rate.burst", 50)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/bazarly.log")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.Mode != "relevance" && config.Search.Mode != "fuzzy" {
		return fmt.Errorf("search mode must be 'relevance' or 'fuzzy', got: %s", config.Search.Mode)
	}

	if config.Search.PageSize <= 0 {
		return fmt.Errorf("search page size must be positive, got: %d", config.Search.PageSize)
	}

	if config.Catalog.InputPath == "" || config.Catalog.BackupPath == "" || config.Catalog.MergedPath == "" {
		return fmt.Errorf("catalog paths must not be empty")
	}

	if config.Rate.PerIP <= 0 {
		return fmt.Errorf("rate limit per_ip must be positive, got: %v", config.Rate.PerIP)
	}

	return nil
}
