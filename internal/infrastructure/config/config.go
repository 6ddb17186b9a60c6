package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the CLI embedding configuration.
// The engine itself takes no configuration; everything here belongs to the
// caller side (where snapshots live, how results are cached and measured).
type Config struct {
	Snapshot SnapshotConfig
	Cache    CacheConfig
	Metrics  MetricsConfig
}

// SnapshotConfig represents snapshot loading configuration
type SnapshotConfig struct {
	Path string // Path to the authorization snapshot JSON file
}

// CacheConfig represents decision cache configuration
type CacheConfig struct {
	Enabled    bool
	MaxEntries int
	TTLMinutes int // Time-to-live for cached active sets in minutes
}

// MetricsConfig represents decision metrics configuration
type MetricsConfig struct {
	Enabled bool
}

// findProjectRoot finds the project root directory by looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up the directory tree until we find go.mod
	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the root directory
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// InitConfig initializes viper configuration
// env: environment name (dev, test, prod)
func InitConfig(env string) error {
	if env == "" {
		env = "dev"
	}

	// Find project root
	projectRoot, err := findProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}

	// Set config file name based on environment
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(projectRoot) // Project root

	// Read config file (optional, ignore error if not found)
	_ = viper.ReadInConfig()

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("SNAPSHOT_PATH", "")

	// Cache defaults
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_MAX_ENTRIES", 4096)
	viper.SetDefault("CACHE_TTL_MINUTES", 5)

	// Metrics defaults
	viper.SetDefault("METRICS_ENABLED", false)

	return nil
}

// Load loads configuration from viper
func Load() (*Config, error) {
	config := &Config{
		Snapshot: SnapshotConfig{
			Path: viper.GetString("SNAPSHOT_PATH"),
		},
		Cache: CacheConfig{
			Enabled:    viper.GetBool("CACHE_ENABLED"),
			MaxEntries: viper.GetInt("CACHE_MAX_ENTRIES"),
			TTLMinutes: viper.GetInt("CACHE_TTL_MINUTES"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
	}

	if config.Cache.Enabled {
		if config.Cache.MaxEntries <= 0 {
			return nil, fmt.Errorf("CACHE_MAX_ENTRIES must be positive when the cache is enabled")
		}
		// A zero TTL would make every cached entry expire on arrival
		if config.Cache.TTLMinutes <= 0 {
			return nil, fmt.Errorf("CACHE_TTL_MINUTES must be positive when the cache is enabled")
		}
	}

	return config, nil
}

// TTL returns the configured cache TTL as a duration
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}
