package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Matcher  MatcherConfig
	Catalog  CatalogConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadMB    int      `mapstructure:"max_upload_mb"`
}

// MatcherConfig holds Gemini API configuration
type MatcherConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	Model             string  `mapstructure:"model"`
	MaxAttempts       int     `mapstructure:"max_attempts"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// MatchingConfig holds pre-filter tuning knobs
type MatchingConfig struct {
	ShortlistLimit    int  `mapstructure:"shortlist_limit"`
	BackfillThreshold int  `mapstructure:"backfill_threshold"`
	BackfillLimit     int  `mapstructure:"backfill_limit"`
	Debug             bool `mapstructure:"debug"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Local development convenience; real deployments inject env vars.
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/presupuestador/")

	// Environment variable settings. The replacer maps nested keys to env
	// names: matcher.max_attempts <- PRESUPUESTADOR_MATCHER_MAX_ATTEMPTS.
	v.SetEnvPrefix("PRESUPUESTADOR")
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

// loadEnvFile reads KEY=VALUE pairs from a .env file in the working directory.
// Missing file is not an error. Already-set environment variables win.
func loadEnvFile() error {
	f, err := os.Open(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, strings.TrimSpace(value))
	}
	return scanner.Err()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_upload_mb", 10)

	// Matcher defaults. The empty api_key default registers the key so the
	// env var binds through Unmarshal; validation rejects the empty value.
	v.SetDefault("matcher.api_key", "")
	v.SetDefault("matcher.model", "gemini-2.0-flash")
	v.SetDefault("matcher.max_attempts", 4)
	v.SetDefault("matcher.requests_per_second", 1.0)
	v.SetDefault("matcher.burst", 3)

	// Catalog defaults
	v.SetDefault("catalog.path", "./catalog.json")

	// Matching defaults
	v.SetDefault("matching.shortlist_limit", 300)
	v.SetDefault("matching.backfill_threshold", 50)
	v.SetDefault("matching.backfill_limit", 100)
	v.SetDefault("matching.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matcher.APIKey == "" {
		return fmt.Errorf("matcher API key is required (set PRESUPUESTADOR_MATCHER_API_KEY)")
	}

	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set PRESUPUESTADOR_CATALOG_PATH)")
	}

	if config.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive, got: %d", config.Server.MaxUploadMB)
	}

	if config.Matcher.MaxAttempts < 1 {
		return fmt.Errorf("matcher max_attempts must be at least 1, got: %d", config.Matcher.MaxAttempts)
	}

	if config.Matching.ShortlistLimit < 1 {
		return fmt.Errorf("matching shortlist_limit must be positive, got: %d", config.Matching.ShortlistLimit)
	}

	return nil
}
